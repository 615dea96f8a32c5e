package bank

import (
	"reflect"
	"strings"
	"testing"

	"github.com/harrison/podassess/internal/models"
)

// embeddedDocument builds a store document from the embedded dataset.
func embeddedDocument(t *testing.T) (*models.Document, *Model) {
	t.Helper()
	result, err := NewLoader(nil).LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded() error = %v", err)
	}
	doc := BuildDocument(result.Model, models.DocumentConfig{Version: "1.0.0", PassingScore: 4})
	return doc, result.Model
}

// TestDocumentRoundTrip verifies the document path produces the same
// model as the CSV path: same dimensions, same canonical question order
// down to every field
func TestDocumentRoundTrip(t *testing.T) {
	doc, want := embeddedDocument(t)

	if err := ValidateDocument(doc); err != nil {
		t.Fatalf("ValidateDocument() error = %v", err)
	}

	m, err := Flatten(FromDocument(doc))
	if err != nil {
		t.Fatalf("Flatten() error = %v", err)
	}

	if !reflect.DeepEqual(m.Dimensions, want.Dimensions) {
		t.Error("round-tripped dimensions differ from CSV path")
	}
	if len(m.Questions) != len(want.Questions) {
		t.Fatalf("question count = %d, want %d", len(m.Questions), len(want.Questions))
	}
	for i := range m.Questions {
		if !reflect.DeepEqual(m.Questions[i], want.Questions[i]) {
			t.Fatalf("question %d differs after round trip:\n got %+v\nwant %+v",
				i, m.Questions[i], want.Questions[i])
		}
	}
}

// TestBuildDocumentConfig verifies the config section is stamped with the
// real question count
func TestBuildDocumentConfig(t *testing.T) {
	doc, m := embeddedDocument(t)

	if doc.Config.TotalQuestions != m.TotalQuestions() {
		t.Errorf("TotalQuestions = %d, want %d", doc.Config.TotalQuestions, m.TotalQuestions())
	}
	if doc.Config.Version != "1.0.0" {
		t.Errorf("Version = %q, want 1.0.0", doc.Config.Version)
	}
}

// TestValidateDocumentRejects verifies the semantic checks fire on
// malformed documents
func TestValidateDocumentRejects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Document)
		wantErr string
	}{
		{
			name:    "missing version",
			mutate:  func(d *models.Document) { d.Config.Version = "" },
			wantErr: "invalid config",
		},
		{
			name:    "wrong dimension count",
			mutate:  func(d *models.Document) { d.Dimensions = d.Dimensions[:3] },
			wantErr: "expected 5 dimensions",
		},
		{
			name:    "count mismatch",
			mutate:  func(d *models.Document) { d.Questions = d.Questions[:10] },
			wantErr: "question count mismatch",
		},
		{
			name:    "missing score guide",
			mutate:  func(d *models.Document) { d.ScoreGuide = nil },
			wantErr: "missing score guide",
		},
		{
			name: "question without text",
			mutate: func(d *models.Document) {
				d.Questions[0].Text = ""
			},
			wantErr: "missing required fields",
		},
		{
			name: "choice question without options",
			mutate: func(d *models.Document) {
				for i, q := range d.Questions {
					if q.Type.HasOptions() {
						d.Questions[i].Options = nil
						return
					}
				}
				t.Fatal("embedded dataset has no choice questions")
			},
			wantErr: "requires options",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, _ := embeddedDocument(t)
			tt.mutate(doc)
			err := ValidateDocument(doc)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ValidateDocument() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

// TestValidateDocumentNil verifies nil rejection
func TestValidateDocumentNil(t *testing.T) {
	if err := ValidateDocument(nil); err == nil {
		t.Error("ValidateDocument(nil) = nil, want error")
	}
}
