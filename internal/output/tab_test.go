package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/vibe-seq/internal/analyze"
	"github.com/inodb/vibe-seq/internal/sequence"
)

func TestTextWriter_WriteReport(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf)

	r := testReport(t, true)
	require.NoError(t, w.WriteReport("demo", r))
	require.NoError(t, w.Flush())

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "# demo\n"))
	assert.Contains(t, out, "Length\t27\n")
	assert.Contains(t, out, "First_start_codon\t7\n")
	assert.Contains(t, out, "## ORFs (")
	assert.Contains(t, out, strings.Join(orfColumns, "\t"))
	assert.Contains(t, out, "## Repeats (")
	assert.Contains(t, out, "CAT\t0\t9\t3\n")
	assert.Contains(t, out, "Kozak\tGCC[AG]CCATGG\t9\t19\tGCCACCATGG\n")
	assert.Contains(t, out, "## Codon_usage (")
	assert.Contains(t, out, "CAT\t3\n")
	assert.Contains(t, out, "## GC_profile (window 10, 2 windows)")
	assert.Contains(t, out, "## Comparison")
	assert.Contains(t, out, "Identity_percent\t88.89\n")
	assert.Contains(t, out, "||| |||||\n")
}

func TestTextWriter_MultipleReports(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf)

	r := testReport(t, false)
	require.NoError(t, w.WriteReport("one", r))
	require.NoError(t, w.WriteReport("", r))
	require.NoError(t, w.Flush())

	out := buf.String()
	assert.Contains(t, out, "# one\n")
	assert.Contains(t, out, "\n\n# sequence\n")
	assert.NotContains(t, out, "## Comparison")
	assert.Equal(t, 2, strings.Count(out, "## ORFs"))
}

func TestTextWriter_Standalone(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf)

	cmp := analyze.CompareSequences(sequence.MustValidate("ATCG"), sequence.MustValidate("ATGG"))
	require.NoError(t, w.WriteComparison(&cmp))
	windows, err := analyze.SlidingWindowGC(sequence.MustValidate("GGAATT"), 3)
	require.NoError(t, err)
	require.NoError(t, w.WriteGCProfile(3, windows))
	require.NoError(t, w.Flush())

	out := buf.String()
	assert.Contains(t, out, "Identity_percent\t75.00\n")
	assert.Contains(t, out, "ATCG\n|| |\nATGG\n")
	assert.Contains(t, out, "0\t3\t66.67\n")
	assert.Contains(t, out, "3\t6\t0.00\n")
}

func TestResidueSummary(t *testing.T) {
	pc := analyze.AnalyzeProtein("MAAG")
	assert.Equal(t, "A:50.00,G:25.00,M:25.00", residueSummary(pc))
}
