package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTitle(t *testing.T) {
	assert.Equal(t, "bolo de cenoura", NormalizeTitle("Bolo de Cenoura"))
	assert.Equal(t, "acai com granola", NormalizeTitle("  Açaí com Granola "))
	assert.Equal(t, "creme brulee", NormalizeTitle("Crème Brûlée"))
	assert.Equal(t, "", NormalizeTitle("   "))
}

func TestGenerateSlug(t *testing.T) {
	assert.Equal(t, "bolo-de-cenoura", GenerateSlug("Bolo de Cenoura"))
	assert.Equal(t, "acai-com-granola", GenerateSlug("Açaí com Granola"))
	assert.Equal(t, "pao-de-queijo", GenerateSlug("Pão de Queijo!"))
	assert.Equal(t, "receita-10", GenerateSlug("Receita #10"))
	assert.Equal(t, "", GenerateSlug("!!!"))
}
