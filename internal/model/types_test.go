package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTacticalCaseIdent(t *testing.T) {
	named := TacticalCase{FEN: "f1", SANs: []string{"Qg4"}, ID: "WAC.001"}
	assert.Equal(t, "WAC.001", named.Ident(0))
	assert.Equal(t, "WAC.001", named.Ident(41), "a declared identifier wins regardless of position")

	anon := TacticalCase{FEN: "f2", SANs: []string{"Nf3"}}
	assert.Equal(t, "pos-001", anon.Ident(0))
	assert.Equal(t, "pos-012", anon.Ident(11))
	assert.Equal(t, "pos-100", anon.Ident(99))
}
