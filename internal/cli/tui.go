package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/solunahq/soluna/internal/backup"
	"github.com/solunahq/soluna/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	if err := ctx.loadStore(); err != nil {
		return err
	}

	// Automatic backup on startup, after a successful load.
	ctx.performAutomaticBackup()

	p := tea.NewProgram(tui.NewModel(ctx.Store, ctx.Clock), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}

// performAutomaticBackup creates a backup and silently ignores failures so a
// full backups directory never blocks startup.
func (c *Context) performAutomaticBackup() {
	mgr := backup.NewManager(c.StoragePath, c.Clock)
	if _, err := mgr.Create(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: automatic backup failed: %v\n", err)
	}
}
