package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// ClockLayout формат часов: день недели, дата и время с секундами
const ClockLayout = "Monday, 02 January 2006  15:04:05"

// runClock prints the current time every tick until ctx is cancelled or the
// process is interrupted. On a terminal the line is redrawn in place.
func (c *Cli) runClock(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(c.tick)
	defer ticker.Stop()

	tty := c.io.IsTerminal()
	show := func() {
		now := c.dash.Now().Format(ClockLayout)
		if tty {
			c.io.Printf("\r%s", now)
			return
		}
		c.io.Println(now)
	}

	show()
	for {
		select {
		case <-ctx.Done():
			if tty {
				c.io.Println()
			}
			return nil
		case <-ticker.C:
			show()
		}
	}
}
