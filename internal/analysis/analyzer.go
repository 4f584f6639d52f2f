package analysis

import (
	"fmt"
	"math"
	"strings"
	"time"

	"grc-docengine/internal/catalog"
)

// Fixed notes per classification bucket.
const (
	notesComplete = "Sudah terdokumentasi dengan baik"
	notesPartial  = "Ditemukan informasi tapi belum lengkap"
	notesMissing  = "Tidak ditemukan dalam dokumen"
)

// Fixed impact strings per deficiency severity.
const (
	impactHigh   = "Berpotensi menyebabkan ketidakpatuhan terhadap regulasi yang berlaku"
	impactMedium = "Mengurangi kelengkapan dan kualitas dokumen"
)

const (
	maxDeficiencies = 5
	maxSuggestions  = 4
)

// Analyzer performs local completeness analysis. Safe for concurrent use as
// long as the classifier is.
type Analyzer struct {
	classifier Classifier
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithClassifier replaces the placeholder classifier, e.g. with a fixed
// sequence in tests or a real extraction model in production.
func WithClassifier(c Classifier) Option {
	return func(a *Analyzer) {
		a.classifier = c
	}
}

func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		classifier: newRandomClassifier(time.Now().UnixNano()),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze classifies the document against every requirement of the module's
// profile and derives the score, risk tier, deficiency and suggestion lists.
// It never fails: unknown module types degrade to the policy profile.
func (a *Analyzer) Analyze(moduleType catalog.ModuleType, documentName, content string) *Result {
	profile := catalog.Requirements(moduleType)

	completeness := make([]CompletenessItem, 0, len(profile.Requirements))
	for _, req := range profile.Requirements {
		status := a.classifier.Classify(moduleType, documentName, content, req)
		completeness = append(completeness, CompletenessItem{
			Item:   req,
			Status: status,
			Notes:  notesFor(status),
		})
	}

	score := Score(completeness)
	risk := RiskFor(score)
	deficiencies := deriveDeficiencies(completeness)
	suggestions := deriveSuggestions(completeness, profile.Regulations)

	countComplete := 0
	for _, item := range completeness {
		if item.Status == StatusComplete {
			countComplete++
		}
	}

	summary := fmt.Sprintf(
		"Dokumen %q dianalisis terhadap fokus %s: %d dari %d persyaratan terpenuhi dengan skor %d/100. Regulasi acuan: %s.",
		documentName, profile.Focus, countComplete, len(completeness), score,
		strings.Join(profile.Regulations, ", "),
	)

	recommendations := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		recommendations = append(recommendations, s.Title)
	}

	return &Result{
		Score:           score,
		Summary:         summary,
		RiskLevel:       risk,
		Completeness:    completeness,
		Deficiencies:    deficiencies,
		Suggestions:     suggestions,
		Findings:        deriveFindings(score, countComplete, len(completeness), len(deficiencies)),
		Recommendations: recommendations,
	}
}

func notesFor(status Status) string {
	switch status {
	case StatusComplete:
		return notesComplete
	case StatusPartial:
		return notesPartial
	default:
		return notesMissing
	}
}

// Score computes round((complete + 0.5*partial)/total*100) as an integer in
// 0..100.
func Score(items []CompletenessItem) int {
	if len(items) == 0 {
		return 0
	}
	var weighted float64
	for _, item := range items {
		switch item.Status {
		case StatusComplete:
			weighted += 1
		case StatusPartial:
			weighted += 0.5
		}
	}
	return int(math.Round(weighted / float64(len(items)) * 100))
}

// RiskFor maps a score to its risk tier.
func RiskFor(score int) RiskLevel {
	switch {
	case score >= 80:
		return RiskLow
	case score >= 60:
		return RiskMedium
	case score >= 40:
		return RiskHigh
	default:
		return RiskCritical
	}
}

func deriveDeficiencies(items []CompletenessItem) []DeficiencyItem {
	out := []DeficiencyItem{}
	for _, item := range items {
		if item.Status == StatusComplete {
			continue
		}
		if len(out) == maxDeficiencies {
			break
		}
		severity := SeverityMedium
		impact := impactMedium
		if item.Status == StatusMissing {
			severity = SeverityHigh
			impact = impactHigh
		}
		out = append(out, DeficiencyItem{
			Title:       item.Item,
			Description: item.Notes,
			Severity:    severity,
			Impact:      impact,
		})
	}
	return out
}

func deriveSuggestions(items []CompletenessItem, regulations []string) []SuggestionItem {
	reference := "Best Practice"
	if len(regulations) > 0 {
		reference = regulations[0]
	}

	out := []SuggestionItem{}
	for _, item := range items {
		if item.Status == StatusComplete {
			continue
		}
		if len(out) == maxSuggestions {
			break
		}
		priority := PriorityMedium
		if item.Status == StatusMissing {
			priority = PriorityHigh
		}
		out = append(out, SuggestionItem{
			Title:       fmt.Sprintf("Lengkapi bagian: %s", item.Item),
			Description: fmt.Sprintf("Tambahkan atau perbaiki dokumentasi untuk %q agar memenuhi persyaratan.", item.Item),
			Priority:    priority,
			Reference:   reference,
		})
	}
	return out
}

func deriveFindings(score, countComplete, total, deficiencyCount int) []Finding {
	severity := "warning"
	if score >= 70 {
		severity = "info"
	}
	findings := []Finding{
		{
			Severity:    severity,
			Title:       "Penilaian Kelengkapan Dokumen",
			Description: fmt.Sprintf("%d dari %d persyaratan terpenuhi (skor %d/100)", countComplete, total, score),
		},
	}
	if deficiencyCount > 0 {
		findings = append(findings, Finding{
			Severity:    "warning",
			Title:       "Kekurangan Dokumen Teridentifikasi",
			Description: fmt.Sprintf("Ditemukan %d bagian dokumen yang perlu dilengkapi", deficiencyCount),
		})
	}
	return findings
}
