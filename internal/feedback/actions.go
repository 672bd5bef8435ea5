package feedback

import (
	"fmt"

	"github.com/mkravets/yardwalk/internal/core"
)

func init() {
	Register("bark", func(actorID string) Notice {
		return Notice{
			Text:  fmt.Sprintf("%s barks at you!", actorID),
			Color: core.ColorBrightRed,
		}
	})
	Register("growl", func(actorID string) Notice {
		return Notice{
			Text:  fmt.Sprintf("%s growls from the shadows...", actorID),
			Color: core.ColorRed,
		}
	})
	Register("calm", func(actorID string) Notice {
		return Notice{
			Text:  fmt.Sprintf("%s settles down.", actorID),
			Color: core.ColorGreen,
		}
	})
	Register("hush_ambient", func(actorID string) Notice {
		return Notice{
			Text:  "the yard goes quiet near the mailbox",
			Color: core.ColorCyan,
		}
	})
	Register("unhush_ambient", func(actorID string) Notice {
		return Notice{
			Text:  "the yard hums back to life",
			Color: core.ColorCyan,
		}
	})
	Register("bump", func(actorID string) Notice {
		return Notice{
			Text:  "oof, something solid",
			Color: core.ColorYellow,
		}
	})
}
