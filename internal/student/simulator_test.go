package student

import "testing"

func TestNewDefaults(t *testing.T) {
	s := NewSeeded(1)
	if s.Mastery != 0.30 || s.Frustration != 0.20 || s.Engagement != 0.70 {
		t.Errorf("unexpected starting traits: %+v", s)
	}
}

func TestRespondBranches(t *testing.T) {
	cases := []struct {
		name       string
		action     string
		difficulty float64
		want       Response
	}{
		{"too hard frustrates", ActionIncreaseDifficulty, 0.9, ResponseFrustrated},
		{"within reach succeeds", ActionIncreaseDifficulty, 0.4, ResponseSuccess},
		{"too easy bores", ActionDecreaseDifficulty, 0.05, ResponseBored},
		{"gentle drop succeeds", ActionDecreaseDifficulty, 0.25, ResponseSuccess},
		{"style switch engages", ActionSwitchStyle, 0.5, ResponseEngaged},
		{"revision improves", ActionOfferRevision, 0.5, ResponseImproved},
		{"unknown action is neutral", "sing_a_song", 0.5, ResponseNeutral},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSeeded(7)
			if got := s.Respond(tc.action, tc.difficulty); got != tc.want {
				t.Errorf("Respond(%q, %g) = %q, want %q", tc.action, tc.difficulty, got, tc.want)
			}
		})
	}
}

func TestRespondMovesTraits(t *testing.T) {
	s := NewSeeded(42)
	before := s.Frustration
	s.Respond(ActionIncreaseDifficulty, 0.9)
	if s.Frustration <= before {
		t.Errorf("frustration did not rise: %g -> %g", before, s.Frustration)
	}

	s = NewSeeded(42)
	before = s.Mastery
	s.Respond(ActionOfferRevision, 0.5)
	if s.Mastery <= before {
		t.Errorf("mastery did not rise: %g -> %g", before, s.Mastery)
	}
}

func TestTraitsStayClamped(t *testing.T) {
	s := NewSeeded(3)
	for i := 0; i < 200; i++ {
		s.Respond(ActionIncreaseDifficulty, 1.0)
	}
	if s.Frustration < 0 || s.Frustration > 1 || s.Engagement < 0 || s.Engagement > 1 {
		t.Errorf("traits escaped [0,1]: %+v", s)
	}

	s = NewSeeded(3)
	for i := 0; i < 200; i++ {
		s.Respond(ActionOfferRevision, 0.5)
	}
	if s.Mastery > 1 || s.Frustration < 0 {
		t.Errorf("traits escaped [0,1]: %+v", s)
	}
}

func TestSeededDeterminism(t *testing.T) {
	a, b := NewSeeded(99), NewSeeded(99)
	for i := 0; i < 50; i++ {
		ra := a.Respond(ActionSwitchStyle, 0.4)
		rb := b.Respond(ActionSwitchStyle, 0.4)
		if ra != rb || a.Engagement != b.Engagement {
			t.Fatalf("step %d diverged: %q/%g vs %q/%g", i, ra, a.Engagement, rb, b.Engagement)
		}
	}
}
