package bank

import (
	"strconv"
	"strings"
	"testing"

	"github.com/harrison/podassess/internal/models"
)

const testHeader = "dimension_id,dimension_name,dimension_description,question_id,question_text,question_type," +
	"option_1_label,option_1_value,option_2_label,option_2_value,option_3_label,option_3_value," +
	"option_4_label,option_4_value,option_5_label,option_5_value,option_6_label,option_6_value," +
	"why_matters,when_done_well,problems_without"

// testCSV builds bank text from the shared header plus the given rows.
func testCSV(rows ...string) string {
	return testHeader + "\n" + strings.Join(rows, "\n") + "\n"
}

// scaleRow emits a minimal scale question row.
func scaleRow(dimID, dimName string, id int, text string) string {
	return strings.Join([]string{
		dimID, dimName, "", strconv.Itoa(id), text, "A",
		"", "", "", "", "", "", "", "", "", "", "", "",
		"because", "good thing", "bad thing",
	}, ",")
}

// TestParseBasic verifies dimensions, questions and the default score
// guide come back from a well formed source
func TestParseBasic(t *testing.T) {
	text := testCSV(
		scaleRow("workflow", "Workflow Mastery", 1, "First question"),
		scaleRow("workflow", "Workflow Mastery", 2, "Second question"),
		scaleRow("rituals", "Ritual Adherence", 10, "Ritual question"),
	)

	b, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(b.Dimensions) != 2 {
		t.Fatalf("len(Dimensions) = %d, want 2", len(b.Dimensions))
	}
	if b.Dimensions[0].ID != "workflow" || b.Dimensions[1].ID != "rituals" {
		t.Errorf("dimension order = [%s %s], want [workflow rituals]",
			b.Dimensions[0].ID, b.Dimensions[1].ID)
	}
	if len(b.Questions) != 3 {
		t.Errorf("len(Questions) = %d, want 3", len(b.Questions))
	}
	if len(b.ScoreGuide) != 6 {
		t.Errorf("len(ScoreGuide) = %d, want 6", len(b.ScoreGuide))
	}
	if len(b.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", b.Warnings)
	}
}

// TestParseFirstDimensionOccurrenceWins verifies later rows cannot rename
// a dimension
func TestParseFirstDimensionOccurrenceWins(t *testing.T) {
	text := testCSV(
		scaleRow("workflow", "Original Name", 1, "q1"),
		scaleRow("workflow", "Renamed Later", 2, "q2"),
	)

	b, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(b.Dimensions) != 1 {
		t.Fatalf("len(Dimensions) = %d, want 1", len(b.Dimensions))
	}
	if b.Dimensions[0].Name != "Original Name" {
		t.Errorf("dimension name = %q, want %q", b.Dimensions[0].Name, "Original Name")
	}
}

// TestParseSkipsBadRows verifies rows with missing or invalid mandatory
// fields are skipped with warnings instead of failing the parse
func TestParseSkipsBadRows(t *testing.T) {
	missingText := strings.Join([]string{
		"workflow", "Workflow", "", "3", "", "A",
		"", "", "", "", "", "", "", "", "", "", "", "",
		"w", "g", "b",
	}, ",")
	badID := strings.Join([]string{
		"workflow", "Workflow", "", "zero", "Some question", "A",
		"", "", "", "", "", "", "", "", "", "", "", "",
		"w", "g", "b",
	}, ",")
	badType := strings.Join([]string{
		"workflow", "Workflow", "", "4", "Some question", "Z",
		"", "", "", "", "", "", "", "", "", "", "", "",
		"w", "g", "b",
	}, ",")

	b, err := Parse(testCSV(
		scaleRow("workflow", "Workflow", 1, "good"),
		missingText,
		badID,
		badType,
	))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(b.Questions) != 1 {
		t.Errorf("len(Questions) = %d, want 1", len(b.Questions))
	}
	if len(b.Warnings) != 3 {
		t.Errorf("len(Warnings) = %d, want 3: %v", len(b.Warnings), b.Warnings)
	}
}

// TestParseSortsWithinDimension verifies questions sort by ascending id
// within each dimension while dimensions keep source order
func TestParseSortsWithinDimension(t *testing.T) {
	text := testCSV(
		scaleRow("workflow", "Workflow", 5, "w5"),
		scaleRow("rituals", "Rituals", 12, "r12"),
		scaleRow("workflow", "Workflow", 2, "w2"),
		scaleRow("rituals", "Rituals", 9, "r9"),
	)

	b, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	var gotIDs []int
	for _, q := range b.Questions {
		gotIDs = append(gotIDs, q.ID)
	}
	want := []int{2, 5, 9, 12}
	for i, id := range want {
		if gotIDs[i] != id {
			t.Fatalf("question order = %v, want %v", gotIDs, want)
		}
	}
}

// TestParseOptions verifies option pair collection for choice questions
func TestParseOptions(t *testing.T) {
	row := strings.Join([]string{
		"execution", "Execution", "", "20", "How many releases?", "B",
		"None", "1", "One or two", "3", "Weekly", "6",
		"", "", "", "", "", "",
		"w", "g", "b",
	}, ",")

	b, err := Parse(testCSV(row))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	q := b.Questions[0]
	if q.Type != models.TypeQuantity {
		t.Errorf("Type = %v, want %v", q.Type, models.TypeQuantity)
	}
	if len(q.Options) != 3 {
		t.Fatalf("len(Options) = %d, want 3", len(q.Options))
	}
	if q.Options[1].Label != "One or two" || q.Options[1].Value != 3 {
		t.Errorf("Options[1] = %+v, want {One or two 3}", q.Options[1])
	}
}

// TestParseOptionWarnings verifies choice questions with missing or
// duplicate option values are kept but warned about
func TestParseOptionWarnings(t *testing.T) {
	noOptions := strings.Join([]string{
		"execution", "Execution", "", "21", "Choice without options", "C",
		"", "", "", "", "", "", "", "", "", "", "", "",
		"w", "g", "b",
	}, ",")
	dupValues := strings.Join([]string{
		"execution", "Execution", "", "22", "Choice with dup values", "C",
		"Low", "2", "Also low", "2", "", "", "", "", "", "", "", "",
		"w", "g", "b",
	}, ",")

	b, err := Parse(testCSV(noOptions, dupValues))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(b.Questions) != 2 {
		t.Fatalf("len(Questions) = %d, want 2", len(b.Questions))
	}
	wantWarnings := []string{"requires options", "duplicate option value 2"}
	for _, fragment := range wantWarnings {
		found := false
		for _, w := range b.Warnings {
			if strings.Contains(w, fragment) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("warnings %v missing %q", b.Warnings, fragment)
		}
	}
}

// TestParseIncompleteEducationalContent verifies a warning when the why
// columns are partially filled
func TestParseIncompleteEducationalContent(t *testing.T) {
	row := strings.Join([]string{
		"workflow", "Workflow", "", "7", "Question", "A",
		"", "", "", "", "", "", "", "", "", "", "", "",
		"matters", "", "",
	}, ",")

	b, err := Parse(testCSV(row))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(b.Warnings) != 1 || !strings.Contains(b.Warnings[0], "educational content incomplete") {
		t.Errorf("Warnings = %v, want educational content warning", b.Warnings)
	}
}

// TestParseEmptySource verifies a source with no rows is a hard error
func TestParseEmptySource(t *testing.T) {
	if _, err := Parse(""); err != ErrEmptySource {
		t.Errorf("Parse(\"\") error = %v, want ErrEmptySource", err)
	}
}
