package strutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asistify/asistencias-api/pkg/strutil"
)

func TestStripAccents(t *testing.T) {
	assert.Equal(t, "Perez", strutil.StripAccents("Pérez"))
	assert.Equal(t, "Bogota", strutil.StripAccents("Bogotá"))
	assert.Equal(t, "nino", strutil.StripAccents("niño"))
	assert.Equal(t, "sin cambios", strutil.StripAccents("sin cambios"))
	assert.Equal(t, "", strutil.StripAccents(""))
}

func TestNormalizeSearch(t *testing.T) {
	assert.Equal(t, "maria jose", strutil.NormalizeSearch("  María José "))
}
