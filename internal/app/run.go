package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/vk/dfaviz/internal/automaton"
	"github.com/vk/dfaviz/internal/ctxlog"
	"github.com/vk/dfaviz/internal/dump"
	"github.com/vk/dfaviz/internal/guard"
	"github.com/vk/dfaviz/internal/render"
)

// Run executes the pipeline: parse, build, reachability, SCC decomposition,
// weakness check, render. Each stage fully consumes its input before the
// next begins; the automaton lives only for the duration of the run.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	src, err := a.readInput()
	if err != nil {
		return err
	}

	sym, err := dump.Parse(src, a.config.DumpPath, a.config.Format)
	if err != nil {
		if errors.Is(err, dump.ErrEmptyDump) {
			return fmt.Errorf("%w (expected a %s/%s block or a structured document)",
				err, dump.BeginSentinel, dump.EndSentinel)
		}
		return fmt.Errorf("parsing dump: %w", err)
	}
	a.logger.Debug("Symbolic dump parsed.", "state_bits", sym.StateBits)

	explicit, err := automaton.FromSymbolic(sym)
	if err != nil {
		return fmt.Errorf("building explicit automaton: %w", err)
	}
	a.logSummary(explicit)

	states := automaton.Reachable(explicit)
	if a.config.AllStates {
		states = automaton.AllStates(explicit)
	}
	a.logger.Debug("State set determined.", "count", len(states), "all_states", a.config.AllStates)

	sccs := automaton.SCCs(states, explicit.Edges)
	a.logger.Debug("SCC decomposition finished.", "count", len(sccs))

	report := automaton.CheckWeak(sccs, explicit.Accepting)
	render.ReportWeakness(a.logger, report)

	if a.config.VerifyGuards {
		if err := a.verifyGuards(explicit, states); err != nil {
			return err
		}
	}

	doc := render.Document(explicit, states, sccs, a.minimizer)
	return a.emit(ctx, doc)
}

// readInput loads the dump source from the configured path or the input
// stream.
func (a *App) readInput() ([]byte, error) {
	if a.config.DumpPath == "" {
		src, err := io.ReadAll(a.inR)
		if err != nil {
			return nil, fmt.Errorf("reading dump from input stream: %w", err)
		}
		return src, nil
	}
	src, err := os.ReadFile(a.config.DumpPath)
	if err != nil {
		return nil, fmt.Errorf("reading dump: %w", err)
	}
	return src, nil
}

// logSummary emits the parsed-automaton summary to the diagnostic stream.
func (a *App) logSummary(e *automaton.Explicit) {
	accepting := make([]int, 0, len(e.Accepting))
	for s := range e.Accepting {
		accepting = append(accepting, s)
	}
	sort.Ints(accepting)

	a.logger.Info("Parsed DFA.",
		"state_bits", e.StateBits,
		"states", e.StateCount,
		"inputs", e.InputLabels,
		"outputs", e.OutputLabels,
		"initial", e.Initial,
		"accepting", accepting,
		"edges", len(e.Edges),
	)
}

// verifyGuards cross-checks every rendered edge's cover against its pair
// set with a SAT query. Mismatches indicate a minimizer defect and fail the
// run.
func (a *App) verifyGuards(e *automaton.Explicit, states map[int]bool) error {
	space := guard.SpaceOf(e)
	mismatches := 0
	for edge, pairs := range e.Edges {
		if !states[edge.From] {
			continue
		}
		cover := a.minimizer.Minimize(pairs, space)
		if !guard.Verify(cover, pairs, space) {
			a.logger.Error("Guard verification failed.",
				"from", edge.From, "to", edge.To, "guard", cover.Render(space))
			mismatches++
		}
	}
	if mismatches > 0 {
		return fmt.Errorf("guard verification failed for %d edge(s)", mismatches)
	}
	a.logger.Debug("Guard verification passed.", "capability", a.minimizer.Name())
	return nil
}

// emit writes the graph document: straight to the primary output in
// dot-only mode, otherwise through the layout backend with a DOT fallback
// when the backend is unavailable.
func (a *App) emit(ctx context.Context, doc string) error {
	if a.config.DotOnly {
		_, err := io.WriteString(a.outW, doc)
		return err
	}

	err := a.backend.Render(ctx, doc, a.config.OutputPath)
	if errors.Is(err, render.ErrBackendUnavailable) {
		a.logger.Warn("Layout backend unavailable, emitting DOT document instead.", "error", err)
		_, werr := io.WriteString(a.outW, doc)
		return werr
	}
	if err != nil {
		return fmt.Errorf("rendering graph: %w", err)
	}
	a.logger.Info("Generated image.", "path", a.config.OutputPath)
	return nil
}
