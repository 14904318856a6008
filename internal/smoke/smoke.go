// Package smoke содержит дымовые проверки против реального сервиса
// и локального хранилища. Используется cmd/smoketest.
package smoke

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrSkipped проверка пропущена, не считается провалом
var ErrSkipped = errors.New("check skipped")

// Check одна именованная проверка
type Check struct {
	Run  func(ctx context.Context) error
	Name string
}

// Result результат выполнения одной проверки
type Result struct {
	Err     error
	Name    string
	Skipped bool
}

// Runner выполняет проверки по очереди и печатает результат каждой
type Runner struct {
	out io.Writer
}

func NewRunner(out io.Writer) *Runner {
	return &Runner{out: out}
}

// Run выполняет все проверки. Возвращает false, если хотя бы одна
// провалилась; пропущенные проверки не влияют на итог.
func (r *Runner) Run(ctx context.Context, checks []Check) bool {
	results := make([]Result, 0, len(checks))
	for _, check := range checks {
		res := Result{Name: check.Name}

		err := check.Run(ctx)
		switch {
		case errors.Is(err, ErrSkipped):
			res.Skipped = true
			fmt.Fprintf(r.out, "SKIP  %s: %v\n", check.Name, err)
		case err != nil:
			res.Err = err
			fmt.Fprintf(r.out, "FAIL  %s: %v\n", check.Name, err)
		default:
			fmt.Fprintf(r.out, "PASS  %s\n", check.Name)
		}

		results = append(results, res)
	}

	passed := 0
	failed := 0
	for _, res := range results {
		if res.Skipped {
			continue
		}
		if res.Err != nil {
			failed++
		} else {
			passed++
		}
	}

	fmt.Fprintf(r.out, "\n%d passed, %d failed, %d skipped\n",
		passed, failed, len(results)-passed-failed)

	return failed == 0
}
