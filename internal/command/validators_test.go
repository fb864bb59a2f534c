// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/staranto/license/internal/license"
	"github.com/staranto/license/internal/templates"
)

func TestFlagValidators(t *testing.T) {
	kind := KindValidator(templates.Embedded())

	tests := []struct {
		name       string
		value      string
		validators []FlagValidatorType
		wantErr    bool
	}{
		{name: "no validators", value: "--anything"},
		{name: "jammed flag", value: "--kind", validators: []FlagValidatorType{JammedFlagValidator}, wantErr: true},
		{name: "single dash ok", value: "-x", validators: []FlagValidatorType{JammedFlagValidator}},
		{name: "known kind", value: "mit", validators: []FlagValidatorType{JammedFlagValidator, kind}},
		{name: "unknown kind", value: "gpl", validators: []FlagValidatorType{JammedFlagValidator, kind}, wantErr: true},
		{name: "output text", value: "text", validators: []FlagValidatorType{OutputValidator}},
		{name: "output yaml", value: "yaml", validators: []FlagValidatorType{OutputValidator}},
		{name: "output raw", value: "raw", validators: []FlagValidatorType{OutputValidator}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FlagValidators(tt.value, tt.validators...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestKindValidator_ReturnsLicenseError(t *testing.T) {
	err := KindValidator(templates.Embedded())("MIT")
	assert.ErrorIs(t, err, license.ErrInvalidKind)
}

func TestCompletionScript(t *testing.T) {
	script, ok := CompletionScript("bash", []string{"a", "b"})
	assert.True(t, ok)
	assert.Contains(t, script, `compgen -W "a b"`)

	_, ok = CompletionScript("fish", nil)
	assert.False(t, ok)
}
