package weather

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		code int
		want Condition
	}{
		{0, ConditionSunny},
		{1, ConditionPartlyCloudy},
		{2, ConditionPartlyCloudy},
		{3, ConditionPartlyCloudy},
		{45, ConditionFoggy},
		{48, ConditionFoggy},
		{51, ConditionRainy},
		{53, ConditionRainy},
		{55, ConditionRainy},
		{61, ConditionRainy},
		{63, ConditionRainy},
		{65, ConditionRainy},
		{71, ConditionSnow},
		{73, ConditionSnow},
		{75, ConditionSnow},
		{95, ConditionStormy},
		{100, ConditionStormy},
		// Codes with no bucket read as clear sky.
		{30, ConditionSunny},
		{77, ConditionSunny},
		{80, ConditionSunny},
	}

	for _, tc := range cases {
		if got := Classify(tc.code); got != tc.want {
			t.Errorf("Classify(%d) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestResultDisplay(t *testing.T) {
	ok := Ok(3, 100, 75)
	if got := ok.Display(); got != "⛅ Partly Cloudy | H: 100°F L: 75°F" {
		t.Fatalf("ok display = %q", got)
	}

	rain := Ok(61, 58.5, 41)
	if got := rain.Display(); got != "🌧️ Rainy | H: 58.5°F L: 41°F" {
		t.Fatalf("rain display = %q", got)
	}

	if got := Unavailable().Display(); got != "Weather unavailable (Date out of range)" {
		t.Fatalf("unavailable display = %q", got)
	}
	if got := Offline().Display(); got != "Weather service offline" {
		t.Fatalf("offline display = %q", got)
	}
}

func TestConditionIconTokens(t *testing.T) {
	tokens := map[Condition]string{
		ConditionSunny:        "sun",
		ConditionPartlyCloudy: "partly-cloudy",
		ConditionFoggy:        "fog",
		ConditionRainy:        "rain",
		ConditionSnow:         "snow",
		ConditionStormy:       "lightning",
	}
	for cond, want := range tokens {
		if got := cond.Icon(); got != want {
			t.Errorf("%q icon = %q, want %q", cond, got, want)
		}
	}
}
