package pet

import (
	"testing"

	"github.com/julianstephens/moodpet/internal/models"
)

func intPtr(i int) *int { return &i }

func TestEffectTable(t *testing.T) {
	tests := []struct {
		mood        models.Mood
		delta       int
		appearance  string
		personality string
	}{
		{models.MoodHappy, 15, "joyful", "cheerful"},
		{models.MoodSad, -10, "melancholic", "sensitive"},
		{models.MoodAngry, -5, "fiery", "passionate"},
		{models.MoodCalm, 10, "serene", "peaceful"},
		{models.MoodExcited, 12, "energetic", "playful"},
		{models.MoodAnxious, -8, "nervous", "cautious"},
	}

	for _, tt := range tests {
		t.Run(string(tt.mood), func(t *testing.T) {
			e, ok := LookupEffect(tt.mood)
			if !ok {
				t.Fatalf("LookupEffect(%q) not found", tt.mood)
			}
			if e.HappinessDelta != tt.delta || e.Appearance != tt.appearance || e.Personality != tt.personality {
				t.Errorf("LookupEffect(%q) = %+v, want {%d %s %s}", tt.mood, e, tt.delta, tt.appearance, tt.personality)
			}
		})
	}

	if len(moodEffects) != len(models.AllMoods) {
		t.Errorf("effect table has %d entries, want %d", len(moodEffects), len(models.AllMoods))
	}
}

func TestLookupEffectUnknown(t *testing.T) {
	if _, ok := LookupEffect(models.Mood("bored")); ok {
		t.Error("LookupEffect(bored) should not be found")
	}
	if e := EffectFor(models.Mood("bored")); e != (Effect{}) {
		t.Errorf("EffectFor(bored) = %+v, want zero effect", e)
	}
}

func TestApplyMoodHappyFromDefault(t *testing.T) {
	got := ApplyMood(models.DefaultPetState(), models.MoodHappy)
	want := models.PetState{Appearance: "joyful", Personality: "cheerful", Happiness: 65, Hunger: 48}
	if got != want {
		t.Errorf("ApplyMood(default, happy) = %+v, want %+v", got, want)
	}
}

func TestApplyMoodSequence(t *testing.T) {
	s := ApplyMood(models.DefaultPetState(), models.MoodSad)
	s = ApplyMood(s, models.MoodAngry)

	want := models.PetState{Appearance: "fiery", Personality: "passionate", Happiness: 35, Hunger: 46}
	if s != want {
		t.Errorf("sad then angry = %+v, want %+v", s, want)
	}
}

func TestApplyMoodBounds(t *testing.T) {
	for _, mood := range models.AllMoods {
		for h := 0; h <= 100; h += 5 {
			for hu := 0; hu <= 100; hu += 5 {
				start := models.PetState{Happiness: h, Hunger: hu}
				got := ApplyMood(start, mood)
				if got.Happiness < 0 || got.Happiness > 100 {
					t.Fatalf("ApplyMood(%+v, %s) happiness = %d, out of range", start, mood, got.Happiness)
				}
				if want := max(hu-2, 0); got.Hunger != want {
					t.Fatalf("ApplyMood(%+v, %s) hunger = %d, want %d", start, mood, got.Hunger, want)
				}
			}
		}
	}
}

func TestApplyMoodClamps(t *testing.T) {
	t.Run("ceiling", func(t *testing.T) {
		got := ApplyMood(models.PetState{Happiness: 95, Hunger: 1}, models.MoodHappy)
		if got.Happiness != 100 {
			t.Errorf("happiness = %d, want 100", got.Happiness)
		}
		if got.Hunger != 0 {
			t.Errorf("hunger = %d, want 0", got.Hunger)
		}
	})

	t.Run("floor", func(t *testing.T) {
		got := ApplyMood(models.PetState{Happiness: 4, Hunger: 0}, models.MoodSad)
		if got.Happiness != 0 {
			t.Errorf("happiness = %d, want 0", got.Happiness)
		}
		if got.Hunger != 0 {
			t.Errorf("hunger = %d, want 0", got.Hunger)
		}
	})
}

func TestApplyMoodIsPure(t *testing.T) {
	start := models.PetState{Appearance: "x", Personality: "y", Happiness: 42, Hunger: 17}
	first := ApplyMood(start, models.MoodCalm)
	second := ApplyMood(start, models.MoodCalm)
	if first != second {
		t.Errorf("ApplyMood not deterministic: %+v vs %+v", first, second)
	}
	if start.Happiness != 42 || start.Appearance != "x" {
		t.Errorf("ApplyMood mutated its input: %+v", start)
	}
}

func TestApplyPurchase(t *testing.T) {
	tests := []struct {
		name        string
		state       models.PetState
		balance     int
		item        models.ShopItem
		wantState   models.PetState
		wantBalance int
		wantOK      bool
	}{
		{
			name:        "unaffordable",
			state:       models.DefaultPetState(),
			balance:     100,
			item:        models.ShopItem{ID: "big", Price: 150, Effect: models.ItemEffect{Happiness: intPtr(50)}},
			wantState:   models.DefaultPetState(),
			wantBalance: 100,
			wantOK:      false,
		},
		{
			name:        "ceiling triggered",
			state:       models.PetState{Happiness: 90, Hunger: 50},
			balance:     100,
			item:        models.ShopItem{ID: "toy", Price: 50, Effect: models.ItemEffect{Happiness: intPtr(20)}},
			wantState:   models.PetState{Happiness: 100, Hunger: 50},
			wantBalance: 50,
			wantOK:      true,
		},
		{
			name:        "exact balance",
			state:       models.PetState{Happiness: 10, Hunger: 10},
			balance:     30,
			item:        models.ShopItem{ID: "meal", Price: 30, Effect: models.ItemEffect{Hunger: intPtr(25)}},
			wantState:   models.PetState{Happiness: 10, Hunger: 35},
			wantBalance: 0,
			wantOK:      true,
		},
		{
			name:        "negative effect floors at zero",
			state:       models.PetState{Happiness: 5, Hunger: 5},
			balance:     10,
			item:        models.ShopItem{ID: "sour", Price: 1, Effect: models.ItemEffect{Happiness: intPtr(-20), Hunger: intPtr(-20)}},
			wantState:   models.PetState{Happiness: 0, Hunger: 0},
			wantBalance: 9,
			wantOK:      true,
		},
		{
			name:        "no effect",
			state:       models.PetState{Happiness: 40, Hunger: 60},
			balance:     5,
			item:        models.ShopItem{ID: "free", Price: 0},
			wantState:   models.PetState{Happiness: 40, Hunger: 60},
			wantBalance: 5,
			wantOK:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, balance, ok := ApplyPurchase(tt.state, tt.balance, tt.item)
			if ok != tt.wantOK {
				t.Errorf("ok = %v, want %v", ok, tt.wantOK)
			}
			if state != tt.wantState {
				t.Errorf("state = %+v, want %+v", state, tt.wantState)
			}
			if balance != tt.wantBalance {
				t.Errorf("balance = %d, want %d", balance, tt.wantBalance)
			}
		})
	}
}

func TestApplyPurchaseNeverNegative(t *testing.T) {
	for b := 0; b <= 200; b += 7 {
		for p := 0; p <= 200; p += 11 {
			_, balance, ok := ApplyPurchase(models.DefaultPetState(), b, models.ShopItem{Price: p})
			if b < p && (ok || balance != b) {
				t.Fatalf("balance %d, price %d: got ok=%v balance=%d, want rejection", b, p, ok, balance)
			}
			if b >= p && (!ok || balance != b-p) {
				t.Fatalf("balance %d, price %d: got ok=%v balance=%d, want %d", b, p, ok, balance, b-p)
			}
		}
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		state models.PetState
		want  string
	}{
		{models.PetState{Happiness: 85, Hunger: 50}, "thriving"},
		{models.PetState{Happiness: 50, Hunger: 50}, "content"},
		{models.PetState{Happiness: 20, Hunger: 21}, "low"},
		{models.PetState{Happiness: 3, Hunger: 20}, "miserable, hungry"},
	}
	for _, tt := range tests {
		if got := Describe(tt.state); got != tt.want {
			t.Errorf("Describe(%+v) = %q, want %q", tt.state, got, tt.want)
		}
	}
}
