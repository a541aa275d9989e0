package holobots

import "testing"

func TestByName(t *testing.T) {
	s, ok := ByName("ACE")
	if !ok || s.Name != "Ace" {
		t.Fatalf("ByName(ACE) = %+v, %v", s, ok)
	}
	if _, ok := ByName("nobody"); ok {
		t.Fatal("unknown name should not resolve")
	}
}

func TestNamesAllResolve(t *testing.T) {
	for _, n := range Names() {
		if _, ok := ByName(n); !ok {
			t.Errorf("Names() entry %q has no template", n)
		}
	}
}

func TestRankForLevel(t *testing.T) {
	cases := []struct {
		level int
		want  string
	}{
		{1, "Common"},
		{9, "Common"},
		{10, "Champion"},
		{20, "Rare"},
		{30, "Elite"},
		{40, "Legendary"},
		{99, "Legendary"},
	}
	for _, c := range cases {
		if got := RankForLevel(c.level); got != c.want {
			t.Errorf("RankForLevel(%d) = %s, want %s", c.level, got, c.want)
		}
	}
}

func TestBaseStat(t *testing.T) {
	s, _ := ByName("kuma")
	if got := s.BaseStat("hp"); got != s.MaxHealth {
		t.Errorf("hp = %d, want MaxHealth %d", got, s.MaxHealth)
	}
	if got := s.BaseStat("attack"); got != s.Attack {
		t.Errorf("attack = %d, want %d", got, s.Attack)
	}
	if got := s.BaseStat("luck"); got != 0 {
		t.Errorf("unknown attribute = %d, want 0", got)
	}
}
