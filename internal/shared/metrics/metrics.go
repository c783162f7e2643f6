package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	llmRequestsTotal atomic.Uint64
	llmFailedTotal   atomic.Uint64
	llmTokensTotal   atomic.Uint64

	pdfCompileTotal  atomic.Uint64
	pdfCompileFailed atomic.Uint64

	jobExtractTotal     atomic.Uint64
	jobExtractFailed    atomic.Uint64
	jobExtractProtected atomic.Uint64

	tempSweptTotal atomic.Uint64

	llmDuration = newHistogram([]float64{250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
	pdfDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000})
)

// ObserveLLMCall records one completion call, its outcome and token usage.
func ObserveLLMCall(durationMs float64, totalTokens int64, err error) {
	llmRequestsTotal.Add(1)
	if err != nil {
		llmFailedTotal.Add(1)
	}
	if totalTokens > 0 {
		llmTokensTotal.Add(uint64(totalTokens))
	}
	llmDuration.Observe(clamp(durationMs))
}

// ObservePDFCompile records one LaTeX compile.
func ObservePDFCompile(durationMs float64, err error) {
	pdfCompileTotal.Add(1)
	if err != nil {
		pdfCompileFailed.Add(1)
	}
	pdfDuration.Observe(clamp(durationMs))
}

// IncJobExtract counts job page extractions by outcome.
func IncJobExtract(protected bool, err error) {
	jobExtractTotal.Add(1)
	switch {
	case protected:
		jobExtractProtected.Add(1)
	case err != nil:
		jobExtractFailed.Add(1)
	}
}

// AddTempSwept counts stale compiler directories removed by the sweeper.
func AddTempSwept(n int) {
	if n > 0 {
		tempSweptTotal.Add(uint64(n))
	}
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "llm_requests_total", "Total LLM completion calls", llmRequestsTotal.Load())
	writeCounter(&buf, "llm_failed_total", "Total failed LLM completion calls", llmFailedTotal.Load())
	writeCounter(&buf, "llm_tokens_total", "Total tokens reported by the LLM provider", llmTokensTotal.Load())
	writeHistogram(&buf, "llm_duration_ms", "LLM call duration in milliseconds", llmDuration.Snapshot())
	writeCounter(&buf, "pdf_compile_total", "Total LaTeX compiles", pdfCompileTotal.Load())
	writeCounter(&buf, "pdf_compile_failed_total", "Total failed LaTeX compiles", pdfCompileFailed.Load())
	writeHistogram(&buf, "pdf_compile_duration_ms", "LaTeX compile duration in milliseconds", pdfDuration.Snapshot())
	writeCounter(&buf, "job_extract_total", "Total job page extractions", jobExtractTotal.Load())
	writeCounter(&buf, "job_extract_failed_total", "Total failed job page extractions", jobExtractFailed.Load())
	writeCounter(&buf, "job_extract_protected_total", "Job pages refused by bot protection", jobExtractProtected.Load())
	writeCounter(&buf, "latex_temp_swept_total", "Stale compiler directories removed", tempSweptTotal.Load())
	return buf.String()
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

// Observe stores the value in its smallest bucket; Render accumulates.
func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			return
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
