package seeder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Eletrônicos", "eletronicos"},
		{"Moda & Acessórios", "moda-acessorios"},
		{"  Casa e Decoração  ", "casa-e-decoracao"},
		{"AÇÚCAR Refinado", "acucar-refinado"},
		{"Pão-de-Queijo!!", "pao-de-queijo"},
		{"Ünïcödé", "unicode"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.name))
		})
	}
}

func TestSlugSequenceDisambiguates(t *testing.T) {
	var seq SlugSequence
	a := seq.Next("Camiseta Básica")
	b := seq.Next("Camiseta Básica")
	assert.Equal(t, "camiseta-basica-0", a)
	assert.Equal(t, "camiseta-basica-1", b)
}
