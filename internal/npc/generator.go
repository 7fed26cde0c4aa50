package npc

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/louisbranch/rpgassist/internal/domain/animal"
	"github.com/louisbranch/rpgassist/internal/domain/body"
	"github.com/louisbranch/rpgassist/internal/domain/rank"
	"github.com/louisbranch/rpgassist/internal/domain/stat"
	"github.com/louisbranch/rpgassist/internal/platform/dice"
	"github.com/louisbranch/rpgassist/internal/platform/encoding"
	apperrors "github.com/louisbranch/rpgassist/internal/platform/errors"
	"github.com/louisbranch/rpgassist/internal/platform/id"
	"github.com/louisbranch/rpgassist/internal/platform/logging"
)

// Generator turns templates into NPCs. A Generator owns its roller and is
// not safe for concurrent use.
type Generator struct {
	roller dice.Roller
	logger *zap.Logger
	now    func() time.Time
	newID  func() (string, error)
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger; nil means no logging.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) { g.logger = logging.OrNop(logger) }
}

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithIDGenerator overrides record id generation.
func WithIDGenerator(newID func() (string, error)) Option {
	return func(g *Generator) { g.newID = newID }
}

// NewGenerator creates a Generator drawing from roller.
func NewGenerator(roller dice.Roller, opts ...Option) *Generator {
	g := &Generator{
		roller: roller,
		logger: zap.NewNop(),
		now:    time.Now,
		newID:  id.NewID,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate rolls one NPC. The draw order is fixed: gender, stats,
// birthmarks, then pet. A contract violation raised while rolling rejects the
// record instead of aborting the caller.
func (g *Generator) Generate(ctx context.Context, tpl Template) (NPC, error) {
	if err := ctx.Err(); err != nil {
		return NPC{}, err
	}
	if err := tpl.Validate(); err != nil {
		return NPC{}, err
	}

	who, err := tpl.ParsedGender()
	if err != nil {
		return NPC{}, err
	}

	npc := NPC{
		Template: strings.TrimSpace(tpl.Name),
		Name:     strings.TrimSpace(tpl.Name),
		Gender:   who,
		Tags:     append(encoding.StringList{}, tpl.Tags...),
	}

	var rollErr error
	if err := apperrors.Guard(func() { rollErr = g.roll(&npc, tpl) }); err != nil {
		return NPC{}, g.reject(npc.Template, err)
	}
	if rollErr != nil {
		return NPC{}, rollErr
	}

	npc.ID, err = g.newID()
	if err != nil {
		return NPC{}, fmt.Errorf("generate npc id: %w", err)
	}
	npc.CreatedAt = g.now().UTC()

	g.logger.Debug("generated npc",
		zap.String("id", npc.ID),
		zap.String("template", npc.Template),
		zap.Stringer("gender", npc.Gender),
		zap.Int("birthmarks", len(npc.Birthmarks)),
		zap.Bool("pet", npc.Pet != nil),
	)
	return npc, nil
}

func (g *Generator) roll(npc *NPC, tpl Template) error {
	npc.Gender.ResolveBiased(g.roller, tpl.GenderBias())
	npc.Stats = stat.RollSheet(g.roller)
	for _, mod := range tpl.Modifiers {
		if !npc.Stats.Apply(mod.Stat()) {
			return apperrors.New(apperrors.CodeNotFound, fmt.Sprintf("modifier %s: sheet has no %s", mod, mod.Kind))
		}
	}

	npc.Skills = skills(tpl.Skills)
	for range tpl.Birthmarks {
		npc.Birthmarks = append(npc.Birthmarks, body.RandomBirthmark(g.roller))
	}
	if tpl.Pet {
		pet := animal.Random(g.roller)
		npc.Pet = &pet
	}

	for _, check := range tpl.Checks {
		passed, err := check.Evaluate(npc.Stats)
		if err != nil {
			return fmt.Errorf("evaluate %s: %w", check, err)
		}
		actual, _ := npc.Stats.Get(check.Kind)
		npc.Checks = append(npc.Checks, CheckResult{Check: check, Actual: actual.Value(), Passed: passed})
	}
	return nil
}

// skills ranks each named skill up from None. Names that collide once
// trimmed share one skill and their values add up.
func skills(values map[string]int) []Skill {
	if len(values) == 0 {
		return nil
	}
	names := slices.Sorted(maps.Keys(values))
	out := make([]Skill, 0, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		i := slices.IndexFunc(out, func(s Skill) bool { return s.Name == name })
		if i < 0 {
			out = append(out, Skill{Name: name, Level: rank.None})
			i = len(out) - 1
		}
		rank.Raise(&out[i], values[raw])
	}
	slices.SortFunc(out, func(a, b Skill) int { return strings.Compare(a.Name, b.Name) })
	return out
}

func (g *Generator) reject(template string, err error) error {
	code := apperrors.GetCode(err)
	fields := []zap.Field{
		zap.String("template", template),
		zap.String("code", string(code)),
		zap.Error(err),
	}
	if code.Fatal() {
		g.logger.Error("npc rejected", fields...)
	} else {
		g.logger.Warn("npc rejected", fields...)
	}
	return fmt.Errorf("template %q: %w", template, err)
}

// GenerateAll rolls count NPCs per template, in template order. Cancellation
// is honored between records.
func (g *Generator) GenerateAll(ctx context.Context, templates []Template, count int) ([]NPC, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be greater than zero")
	}
	npcs := make([]NPC, 0, len(templates)*count)
	for _, tpl := range templates {
		for i := 0; i < count; i++ {
			npc, err := g.Generate(ctx, tpl)
			if err != nil {
				return npcs, fmt.Errorf("generate %q #%d: %w", tpl.Name, i+1, err)
			}
			npcs = append(npcs, npc)
		}
	}
	g.logger.Info("generation complete",
		zap.Int("templates", len(templates)),
		zap.Int("npcs", len(npcs)),
	)
	return npcs, nil
}
