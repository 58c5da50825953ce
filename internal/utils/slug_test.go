// internal/utils/slug_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Queijo Minas Artesanal", "queijo-minas-artesanal"},
		{"Doce de Leite Cremoso", "doce-de-leite-cremoso"},
		{"Pão de Açúcar", "pao-de-acucar"},
		{"Feira São João 2026", "feira-sao-joao-2026"},
		{"  espaços   extras  ", "espacos-extras"},
		{"já-com-hifens", "ja-com-hifens"},
		{"under_scores e traços", "under-scores-e-tracos"},
		{"Símbolos!@#$%&*()", "simbolos"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "Slugify(%q)", tt.in)
	}
}

func TestSlugifyIsIdempotent(t *testing.T) {
	inputs := []string{
		"Queijo Minas Artesanal",
		"Pão de Açúcar",
		"Feira São João 2026",
	}

	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "Slugify(%q) not idempotent", in)
	}
}

func TestIsValidSlug(t *testing.T) {
	valid := []string{"mel", "queijo-minas", "feira-2026", "a1-b2-c3"}
	for _, s := range valid {
		assert.True(t, IsValidSlug(s), "expected %q to be valid", s)
	}

	invalid := []string{"", "-mel", "mel-", "mel--silvestre", "Mel", "mel silvestre", "café"}
	for _, s := range invalid {
		assert.False(t, IsValidSlug(s), "expected %q to be invalid", s)
	}
}

func TestSlugifyOutputIsValidSlug(t *testing.T) {
	inputs := []string{
		"Queijo Minas Artesanal",
		"Pão de Açúcar",
		"Símbolos!@#$%&*() e números 42",
	}

	for _, in := range inputs {
		assert.True(t, IsValidSlug(Slugify(in)), "Slugify(%q) = %q", in, Slugify(in))
	}
}
