// Ahara - Multi-System Dietary Recommendation Service
// Copyright 2026 Ahara Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahara-health/ahara

package engine

import (
	"testing"

	"github.com/ahara-health/ahara/internal/models"
)

func TestResolveFramework(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		profile *models.Profile
		want    Framework
	}{
		{
			name:    "nil profile falls back",
			profile: nil,
			want:    FrameworkAyurveda,
		},
		{
			name:    "empty profile falls back",
			profile: &models.Profile{},
			want:    FrameworkAyurveda,
		},
		{
			name: "dosha fields select ayurveda",
			profile: &models.Profile{
				Doshas: map[string]float64{"vata": 40, "pitta": 35, "kapha": 25},
			},
			want: FrameworkAyurveda,
		},
		{
			name: "dosha imbalance alone selects ayurveda",
			profile: &models.Profile{
				DoshaImbalance: map[string]float64{"pitta": 70},
			},
			want: FrameworkAyurveda,
		},
		{
			name: "humor fields select unani",
			profile: &models.Profile{
				Humors: map[string]float64{"phlegm": 55},
			},
			want: FrameworkUnani,
		},
		{
			name: "pattern fields select tcm",
			profile: &models.Profile{
				PatternImbalance: map[string]float64{"damp_heat": 62},
			},
			want: FrameworkTCM,
		},
		{
			name: "state fields select siddha",
			profile: &models.Profile{
				States: map[string]float64{"azhal": 48},
			},
			want: FrameworkSiddha,
		},
		{
			name: "anthropometrics alone select modern",
			profile: &models.Profile{
				BMI: 27.5,
				Age: 42,
			},
			want: FrameworkModern,
		},
		{
			name: "dosha fields win over all others",
			profile: &models.Profile{
				Doshas:  map[string]float64{"kapha": 60},
				Humors:  map[string]float64{"blood": 60},
				Patterns: map[string]float64{"qi_deficiency": 60},
				BMI:     31,
			},
			want: FrameworkAyurveda,
		},
		{
			name: "humors win over patterns",
			profile: &models.Profile{
				Humors:   map[string]float64{"black_bile": 50},
				Patterns: map[string]float64{"yin_deficiency": 50},
			},
			want: FrameworkUnani,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ResolveFramework(tt.profile, nil, FrameworkAyurveda)
			if got != tt.want {
				t.Errorf("ResolveFramework() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveFrameworkCustomFallback(t *testing.T) {
	t.Parallel()

	got := ResolveFramework(&models.Profile{}, nil, FrameworkModern)
	if got != FrameworkModern {
		t.Errorf("ResolveFramework() = %v, want modern fallback", got)
	}
}

func TestResolveFrameworkCustomPriority(t *testing.T) {
	t.Parallel()

	profile := &models.Profile{
		Doshas: map[string]float64{"pitta": 60},
		BMI:    31,
	}

	modernFirst := []Framework{FrameworkModern, FrameworkAyurveda, FrameworkUnani, FrameworkTCM, FrameworkSiddha}
	if got := ResolveFramework(profile, modernFirst, FrameworkAyurveda); got != FrameworkModern {
		t.Errorf("modern-first priority: got %v, want modern", got)
	}

	// A listed framework with no populated fields is skipped.
	tcmFirst := []Framework{FrameworkTCM, FrameworkAyurveda}
	if got := ResolveFramework(profile, tcmFirst, FrameworkSiddha); got != FrameworkAyurveda {
		t.Errorf("tcm-first priority: got %v, want ayurveda", got)
	}

	// A truncated list matching none of the profile's fields falls back.
	humoral := &models.Profile{Humors: map[string]float64{"blood": 50}}
	if got := ResolveFramework(humoral, tcmFirst, FrameworkSiddha); got != FrameworkSiddha {
		t.Errorf("unmatched priority: got %v, want siddha fallback", got)
	}
}

func TestParseFramework(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Framework
		wantErr bool
	}{
		{"ayurveda", FrameworkAyurveda, false},
		{"unani", FrameworkUnani, false},
		{"tcm", FrameworkTCM, false},
		{"siddha", FrameworkSiddha, false},
		{"modern", FrameworkModern, false},
		{"", "", true},
		{"homeopathy", "", true},
		{"Ayurveda", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseFramework(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFramework(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFramework(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
