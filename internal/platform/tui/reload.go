package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-climb/internal/config"
)

// configReloadMsg carries a configuration re-read after its file changed.
type configReloadMsg struct {
	path string
	cfg  config.ClimbConfig
}

// configErrorMsg reports a failed reload; the previous configuration stays.
type configErrorMsg struct {
	err error
}

// watchConfigCmd waits for the next change of the watched file and reloads it.
// The preset is re-applied so a reload never drops command line choices.
func watchConfigCmd(w *config.Watcher, preset config.Preset) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			cfg, err := config.LoadClimb(path)
			if err != nil {
				return configErrorMsg{err: err}
			}
			config.ApplyPreset(&cfg, preset)
			return configReloadMsg{path: path, cfg: cfg}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return configErrorMsg{err: err}
		}
	}
}
