//go:build analysis

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"MAYO-Signature/mayo"
	"MAYO-Signature/params"
	"MAYO-Signature/prof"

	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/tuneinsight/lattigo/v4/utils"
)

type summaryStats struct {
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	Std      float64 `json:"std"`
	Min      float64 `json:"min"`
	Q1       float64 `json:"q1"`
	Median   float64 `json:"median"`
	Q3       float64 `json:"q3"`
	Max      float64 `json:"max"`
	IQR      float64 `json:"iqr"`
	Skewness float64 `json:"skewness"`
	Kurtosis float64 `json:"kurtosis_excess"`
}

// ------------------------------ stats utilities ------------------------------

func computeStats(x []float64) summaryStats {
	n := len(x)
	if n == 0 {
		return summaryStats{}
	}
	cp := append([]float64(nil), x...)
	sort.Float64s(cp)
	minv, maxv := cp[0], cp[n-1]
	median := quantileSorted(cp, 0.5)
	q1 := quantileSorted(cp, 0.25)
	q3 := quantileSorted(cp, 0.75)
	iqr := q3 - q1
	var m float64
	for _, v := range x {
		m += v
	}
	m /= float64(n)
	var m2, m3, m4 float64
	for _, v := range x {
		d := v - m
		d2 := d * d
		m2 += d2
		m3 += d2 * d
		m4 += d2 * d2
	}
	varVar := m2 / float64(n-1)
	std := math.Sqrt(varVar)
	var skew, kurtEx float64
	if std > 0 {
		m2n := m2 / float64(n)
		m3n := m3 / float64(n)
		m4n := m4 / float64(n)
		skew = m3n / math.Pow(m2n, 1.5)
		kurtEx = m4n/m2n/m2n - 3.0
	}
	return summaryStats{Count: n, Mean: m, Std: std, Min: minv, Q1: q1, Median: median, Q3: q3, Max: maxv, IQR: iqr, Skewness: skew, Kurtosis: kurtEx}
}

func quantileSorted(sorted []float64, p float64) float64 {
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := p * float64(len(sorted)-1)
	l := int(math.Floor(pos))
	r := int(math.Ceil(pos))
	if l == r {
		return sorted[l]
	}
	w := pos - float64(l)
	return sorted[l]*(1-w) + sorted[r]*w
}

func freedmanDiaconisBins(x []float64) int {
	n := len(x)
	if n < 2 {
		return 1
	}
	cp := append([]float64(nil), x...)
	sort.Float64s(cp)
	iqr := quantileSorted(cp, 0.75) - quantileSorted(cp, 0.25)
	if iqr == 0 {
		if n < 200 {
			return n
		}
		return 200
	}
	bw := 2 * iqr * math.Pow(float64(n), -1.0/3.0)
	if bw <= 0 {
		if n < 200 {
			return n
		}
		return 200
	}
	r := cp[n-1] - cp[0]
	k := int(math.Ceil(r / bw))
	if k < 50 {
		k = 50
	}
	if k > 2000 {
		k = 2000
	}
	return k
}

func computeHistogram(values []float64, nbins int) (edges []float64, counts []int) {
	if len(values) == 0 {
		return []float64{0, 1}, []int{0}
	}
	cp := append([]float64(nil), values...)
	sort.Float64s(cp)
	minv, maxv := cp[0], cp[len(cp)-1]
	if nbins < 1 {
		nbins = 1
	}
	width := (maxv - minv) / float64(nbins)
	if width <= 0 {
		width = 1
	}
	edges = make([]float64, nbins+1)
	for i := 0; i <= nbins; i++ {
		edges[i] = minv + float64(i)*width
	}
	counts = make([]int, nbins)
	for _, v := range values {
		idx := int(math.Floor((v - minv) / width))
		if idx < 0 {
			idx = 0
		}
		if idx >= nbins {
			idx = nbins - 1
		}
		counts[idx]++
	}
	return
}

// ------------------------- collection helpers -------------------------

// phaseKeys maps tracked phase labels to the series names used in the
// stats JSON and the histogram page.
var phaseKeys = map[string]string{
	"Mayo.GenerateKeypair": "keygen_ms",
	"Mayo.ExpandSecretKey": "expand_sk_ms",
	"Mayo.ExpandPublicKey": "expand_pk_ms",
	"Mayo.Sign":            "sign_ms",
	"Mayo.Verify":          "verify_ms",
}

func collectPhases(sink map[string][]float64) {
	for _, e := range prof.SnapshotAndReset() {
		key, ok := phaseKeys[e.Label]
		if !ok {
			continue
		}
		sink[key] = append(sink[key], float64(e.Dur.Nanoseconds())/1e6)
	}
}

// ------------------------- plotting: go-echarts HTML -------------------------

func toBarItems(vals []int) []opts.BarData {
	out := make([]opts.BarData, len(vals))
	for i, v := range vals {
		out[i] = opts.BarData{Value: v}
	}
	return out
}

func newHistogramChart(title string, values []float64, stats summaryStats) *charts.Bar {
	nbins := freedmanDiaconisBins(values)
	edges, counts := computeHistogram(values, nbins)
	xLabels := make([]string, nbins)
	for i := 0; i < nbins; i++ {
		center := 0.5 * (edges[i] + edges[i+1])
		xLabels[i] = fmt.Sprintf("%.2f", center)
	}
	bar := charts.NewBar()
	subtitle := fmt.Sprintf("n=%d, mean=%.3f, std=%.3f, median=%.3f, IQR=%.3f", stats.Count, stats.Mean, stats.Std, stats.Median, stats.IQR)
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(xLabels).
		AddSeries("count", toBarItems(counts)).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))
	return bar
}

// ------------------------------ JSON and I/O ------------------------------

func saveJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// ------------------------------- main routine -------------------------------

func main() {
	runs := flag.Int("runs", 100, "number of keygen/sign/verify runs")
	level := flag.String("level", "MAYO_1", "parameter set: MAYO_1, MAYO_2, MAYO_3 or MAYO_5")
	seedStr := flag.String("seed", "analysis", "seed string for the run PRNG (hashed with SHA256)")
	seedHex := flag.String("seedhex", "", "optional hex seed (overrides -seed)")
	msgLen := flag.Int("msglen", 33, "message length in bytes")
	outDir := flag.String("out", "Measure_Reports", "output directory for reports")
	flag.Parse()

	p, err := params.ByName(*level)
	if err != nil {
		log.Fatalf("level: %v", err)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("mkdir: %v", err)
	}

	// Build the keyed PRNG that drives the whole run: key seeds, messages
	// and signing salts all come from it, so a run is reproducible from
	// the seed alone.
	var seed []byte
	if *seedHex != "" {
		b, err := hex.DecodeString(strings.TrimPrefix(*seedHex, "0x"))
		if err != nil {
			log.Fatalf("seedhex: %v", err)
		}
		seed = b
	} else {
		sum := sha256.Sum256([]byte(*seedStr))
		seed = sum[:]
	}
	prng, err := utils.NewKeyedPRNG(seed)
	if err != nil {
		log.Fatalf("prng: %v", err)
	}

	// Drop whatever setup recorded before the measured loop.
	prof.SnapshotAndReset()
	prof.CountersAndReset()

	var attempts []float64
	phases := map[string][]float64{}

	for i := 0; i < *runs; i++ {
		skSeed := make([]byte, p.SKSeedBytes)
		if _, err := io.ReadFull(prng, skSeed); err != nil {
			log.Fatalf("seed read: %v", err)
		}
		pk, sk, err := mayo.GenerateKeypairFromSeed(p, skSeed)
		if err != nil {
			log.Fatalf("keygen: %v", err)
		}
		esk, err := mayo.ExpandSecretKey(p, sk)
		if err != nil {
			log.Fatalf("expand sk: %v", err)
		}
		epk, err := mayo.ExpandPublicKey(p, pk)
		if err != nil {
			log.Fatalf("expand pk: %v", err)
		}

		msg := make([]byte, *msgLen)
		if _, err := io.ReadFull(prng, msg); err != nil {
			log.Fatalf("msg read: %v", err)
		}
		sig, err := mayo.SignExpanded(esk, msg, prng)
		if err != nil {
			log.Fatalf("run %d: sign: %v", i+1, err)
		}
		if !mayo.VerifyExpanded(epk, msg, sig) {
			log.Fatalf("run %d: signature did not verify", i+1)
		}

		n := prof.CountersAndReset()["Mayo.SignAttempts"]
		attempts = append(attempts, float64(n))
		collectPhases(phases)
		log.Printf("[analysis] run %d/%d: %d signing attempt(s)", i+1, *runs, n)
	}

	// Compute stats
	outStats := map[string]summaryStats{
		"sign_attempts": computeStats(attempts),
	}
	for key, vals := range phases {
		outStats[key] = computeStats(vals)
	}

	ts := time.Now().Format("20060102_150405")
	jsonPath := filepath.Join(*outDir, fmt.Sprintf("mayo_stats_%s.json", ts))
	if err := saveJSON(jsonPath, outStats); err != nil {
		log.Printf("warn: save stats: %v", err)
	}

	// Build a single HTML page with multiple histograms
	page := components.NewPage()

	add := func(name string, vals []float64) {
		if len(vals) == 0 {
			return
		}
		st := computeStats(vals)
		page.AddCharts(newHistogramChart(name, vals, st))
	}
	add(p.Name+" signing attempts", attempts)
	add(p.Name+" keygen latency (ms)", phases["keygen_ms"])
	add(p.Name+" expand sk latency (ms)", phases["expand_sk_ms"])
	add(p.Name+" expand pk latency (ms)", phases["expand_pk_ms"])
	add(p.Name+" sign latency (ms)", phases["sign_ms"])
	add(p.Name+" verify latency (ms)", phases["verify_ms"])

	htmlPath := filepath.Join(*outDir, fmt.Sprintf("mayo_histograms_%s.html", ts))
	f, err := os.Create(htmlPath)
	if err != nil {
		log.Fatalf("create html: %v", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		log.Fatalf("render html: %v", err)
	}
	fmt.Println("Histogram page:", htmlPath)
	fmt.Println("Stats JSON:", jsonPath)
	fmt.Printf("%s: %d runs, sig=%d bytes, cpk=%d bytes\n", p.Name, *runs, p.SigBytes(), p.CPKBytes())
}
