// Package npc generates non-player characters from templates by combining
// the random tables, the deferred gender attribute, stats, and ranks.
package npc

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/louisbranch/rpgassist/internal/domain/animal"
	"github.com/louisbranch/rpgassist/internal/domain/body"
	"github.com/louisbranch/rpgassist/internal/domain/gender"
	"github.com/louisbranch/rpgassist/internal/domain/rank"
	"github.com/louisbranch/rpgassist/internal/domain/stat"
	"github.com/louisbranch/rpgassist/internal/platform/encoding"
	"github.com/louisbranch/rpgassist/internal/platform/text"
)

// NPC is one generated character.
type NPC struct {
	ID         string              `json:"id"`
	Template   string              `json:"template"`
	Name       string              `json:"name"`
	Gender     gender.Gender       `json:"gender"`
	Stats      stat.Sheet          `json:"stats"`
	Skills     []Skill             `json:"skills,omitempty"`
	Birthmarks []body.Birthmark    `json:"birthmarks,omitempty"`
	Pet        *animal.Animal      `json:"pet,omitempty"`
	Tags       encoding.StringList `json:"tags"`
	Checks     []CheckResult       `json:"checks,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
}

// Skill is a named trait with a rank. NPC skills are kept sorted by name.
type Skill struct {
	Name  string    `json:"name"`
	Level rank.Rank `json:"rank"`
}

// Rank returns the skill level.
func (s *Skill) Rank() rank.Rank { return s.Level }

// SetRank replaces the skill level.
func (s *Skill) SetRank(r rank.Rank) { s.Level = r }

// String renders e.g. "Tracking Rank 4".
func (s Skill) String() string {
	return text.ProperCase(s.Name) + " " + s.Level.Explain()
}

var _ rank.Ranked = (*Skill)(nil)

// Skill returns the named skill.
func (n NPC) Skill(name string) (Skill, bool) {
	for _, s := range n.Skills {
		if s.Name == name {
			return s, true
		}
	}
	return Skill{}, false
}

// CheckResult records one template check against the rolled stats.
type CheckResult struct {
	Check  stat.Check `json:"check"`
	Actual int        `json:"actual"`
	Passed bool       `json:"passed"`
}

// String renders e.g. "Str Greater 12 (14): passed".
func (c CheckResult) String() string {
	outcome := "failed"
	if c.Passed {
		outcome = "passed"
	}
	return fmt.Sprintf("%s (%d): %s", c.Check, c.Actual, outcome)
}

// WriteText renders a human-readable sheet.
func (n NPC) WriteText(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", text.ProperCase(n.Name), n.Gender)
	fmt.Fprintf(&b, "  id: %s\n", n.ID)
	if len(n.Tags) > 0 {
		fmt.Fprintf(&b, "  tags: %s\n", text.NaturalJoin(n.Tags))
	}

	stats := make([]string, 0, len(n.Stats))
	for _, s := range n.Stats {
		stats = append(stats, s.String())
	}
	fmt.Fprintf(&b, "  stats: %s\n", strings.Join(stats, ", "))

	if len(n.Skills) > 0 {
		skills := make([]string, 0, len(n.Skills))
		for _, skill := range n.Skills {
			skills = append(skills, skill.String())
		}
		fmt.Fprintf(&b, "  skills: %s\n", text.NaturalJoin(skills))
	}
	for _, mark := range n.Birthmarks {
		fmt.Fprintf(&b, "  %s\n", mark)
	}
	if n.Pet != nil {
		fmt.Fprintf(&b, "  pet: %s\n", *n.Pet)
	}
	for _, c := range n.Checks {
		fmt.Fprintf(&b, "  check %s\n", c)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
