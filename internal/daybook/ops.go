package daybook

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/colonyops/daybook/internal/core/config"
	"github.com/colonyops/daybook/internal/core/todo"
)

// opSpec is one operation variant: the argument count it requires and its
// handler. Keyword dispatch is a lookup into the registry, not a map of
// closures assembled at runtime.
type opSpec struct {
	// arity is the exact argument count, or -1 for raw-text operations
	// that join the remaining words into one argument.
	arity int
	run   func(s *Service, params []string) (string, error)
}

var registry = map[string]opSpec{
	config.OpList:           {arity: 0, run: runList},
	config.OpToggle:         {arity: 1, run: indexOp((*Service).Toggle)},
	config.OpComplete:       {arity: 1, run: indexOp((*Service).Complete)},
	config.OpUncomplete:     {arity: 1, run: indexOp((*Service).Uncomplete)},
	config.OpSetDuration:    {arity: 2, run: durationOp((*Service).SetDuration)},
	config.OpFinishDuration: {arity: 2, run: durationOp((*Service).FinishWithDuration)},
	config.OpDuplicate:      {arity: 1, run: indexOp((*Service).Duplicate)},
	config.OpDuplicateDone:  {arity: 1, run: indexOp((*Service).DuplicateDone)},
	config.OpNew:            {arity: -1, run: runNew},
	config.OpDelete:         {arity: 1, run: indexOp((*Service).Delete)},
	config.OpTime:           {arity: 0, run: runTime},
	config.OpWeekTime:       {arity: 0, run: runWeekTime},
	config.OpCumulativeTime: {arity: 0, run: runCumulativeTime},
	config.OpTags:           {arity: 0, run: runTags},
	config.OpCumulativeTags: {arity: 0, run: runCumulativeTags},
	config.OpCacheStats:     {arity: 0, run: runCacheStats},
}

// Execute runs the named canonical operation and returns its rendered
// output. Help and quit are loop concerns and are not dispatched here.
func (s *Service) Execute(op string, params []string) (string, error) {
	spec, ok := registry[op]
	if !ok {
		return "", fmt.Errorf("unknown operation %q", op)
	}

	switch {
	case spec.arity < 0:
		if len(params) == 0 {
			return "", fmt.Errorf("%s expects an item line", op)
		}
	case len(params) != spec.arity:
		return "", fmt.Errorf("%s expects %d argument(s), got %d", op, spec.arity, len(params))
	}

	return spec.run(s, params)
}

func parseIndex(param string) (int, error) {
	idx, err := strconv.Atoi(param)
	if err != nil {
		return 0, fmt.Errorf("invalid item index %q", param)
	}
	return idx, nil
}

// indexOp adapts a single-index service method into an op handler that
// renders the resulting list.
func indexOp(fn func(*Service, int) (todo.Log, error)) func(*Service, []string) (string, error) {
	return func(s *Service, params []string) (string, error) {
		idx, err := parseIndex(params[0])
		if err != nil {
			return "", err
		}
		items, err := fn(s, idx)
		if err != nil {
			return "", err
		}
		return RenderList(items), nil
	}
}

// durationOp adapts an index-plus-duration service method, with the
// duration written as on an item line, e.g. "45m".
func durationOp(fn func(*Service, int, int) (todo.Log, error)) func(*Service, []string) (string, error) {
	return func(s *Service, params []string) (string, error) {
		idx, err := parseIndex(params[0])
		if err != nil {
			return "", err
		}
		minutes, err := todo.ParseDuration(params[1])
		if err != nil {
			return "", err
		}
		items, err := fn(s, idx, minutes)
		if err != nil {
			return "", err
		}
		return RenderList(items), nil
	}
}

func runList(s *Service, _ []string) (string, error) {
	items, err := s.List()
	if err != nil {
		return "", err
	}
	return RenderList(items), nil
}

func runNew(s *Service, params []string) (string, error) {
	items, err := s.New(strings.Join(params, " "))
	if err != nil {
		return "", err
	}
	return RenderList(items), nil
}

func runTime(s *Service, _ []string) (string, error) {
	done, total, err := s.TimeToday()
	if err != nil {
		return "", err
	}
	return RenderTimeToday(done, total), nil
}

func runWeekTime(s *Service, _ []string) (string, error) {
	done, _, days, err := s.TimeWeek()
	if err != nil {
		return "", err
	}
	return RenderTimeOver("Weekly", done, days), nil
}

func runCumulativeTime(s *Service, _ []string) (string, error) {
	done, _, days, err := s.TimeCumulative()
	if err != nil {
		return "", err
	}
	return RenderTimeOver("Cumulative", done, days), nil
}

func runTags(s *Service, _ []string) (string, error) {
	counts, minutes, err := s.TagsToday()
	if err != nil {
		return "", err
	}
	return RenderTags("Todays tags:", counts, minutes), nil
}

func runCumulativeTags(s *Service, _ []string) (string, error) {
	counts, minutes, err := s.TagsCumulative()
	if err != nil {
		return "", err
	}
	return RenderTags("All tags:", counts, minutes), nil
}

func runCacheStats(s *Service, _ []string) (string, error) {
	st := s.CacheStats()
	return fmt.Sprintf("cache hits/misses: %d/%d", st.Hits, st.Misses), nil
}
