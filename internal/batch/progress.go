package batch

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"golang.org/x/term"
)

// progress is a terminal progress bar. It is a no-op when disabled or when
// stderr is not a terminal.
type progress struct {
	container *mpb.Progress
	bar       *mpb.Bar

	mu   sync.Mutex
	last string
}

const descLength = 20

func newProgress(total int, enabled bool) *progress {
	p := &progress{}
	if !enabled || !term.IsTerminal(int(os.Stderr.Fd())) {
		return p
	}

	fmt.Fprintln(os.Stderr)
	p.container = mpb.New(
		mpb.WithOutput(os.Stderr),
		mpb.WithWidth(64),
		mpb.WithRefreshRate(100*time.Millisecond),
	)
	p.bar = p.container.New(int64(total),
		mpb.BarStyle().Lbound("[").Filler("█").Tip("█").Padding("░").Rbound("]"),
		mpb.PrependDecorators(
			decor.Any(func(decor.Statistics) string {
				p.mu.Lock()
				defer p.mu.Unlock()
				if len(p.last) > descLength {
					return p.last[:descLength-2] + ".."
				}
				return p.last
			}, decor.WC{W: descLength, C: decor.DindentRight}),
			decor.Name("  "),
			decor.CountersNoUnit("%d/%d", decor.WC{C: decor.DindentRight}),
		),
		mpb.AppendDecorators(
			decor.Percentage(),
		),
	)
	return p
}

// done records one finished item.
func (p *progress) done(name string) {
	if p.bar == nil {
		return
	}
	p.mu.Lock()
	p.last = name
	p.mu.Unlock()
	p.bar.Increment()
}

func (p *progress) finish() {
	if p.container == nil {
		return
	}
	p.container.Wait()
	fmt.Fprintln(os.Stderr)
}
