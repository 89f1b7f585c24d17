package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
)

const menuTitle = "AlgoForge"

// MenuHost is the part of desktop.App the tray needs.
type MenuHost interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

// Section is a jump target listed in the tray.
type Section struct {
	ID    string
	Label string
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnJump        func(id string)
	OnDismiss     func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	host        MenuHost
	callbacks   Callbacks
	statusItem  *fyne.MenuItem
	jumpItem    *fyne.MenuItem
	dismissItem *fyne.MenuItem
	statusLabel string
	menu        *fyne.Menu
}

// New creates a tray manager with the provided callbacks.
func New(host MenuHost, sections []Section, callbacks Callbacks) *Manager {
	manager := &Manager{
		host:      host,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true

	jumps := make([]*fyne.MenuItem, 0, len(sections))
	for _, section := range sections {
		id := section.ID
		jumps = append(jumps, fyne.NewMenuItem(section.Label, func() {
			if manager.callbacks.OnShow != nil {
				manager.callbacks.OnShow()
			}
			if manager.callbacks.OnJump != nil {
				manager.callbacks.OnJump(id)
			}
		}))
	}
	manager.jumpItem = fyne.NewMenuItem("Jump to", nil)
	manager.jumpItem.ChildMenu = fyne.NewMenu("", jumps...)

	manager.dismissItem = fyne.NewMenuItem("Dismiss banner", func() {
		if manager.callbacks.OnDismiss != nil {
			manager.callbacks.OnDismiss()
		}
	})
	manager.dismissItem.Disabled = true

	manager.refreshMenu()
	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	if status == manager.statusLabel {
		return
	}
	manager.statusLabel = status
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
	manager.refreshMenu()
}

// SetBannerVisible toggles the dismiss item.
func (manager *Manager) SetBannerVisible(visible bool) {
	manager.dismissItem.Disabled = !visible
	manager.refreshMenu()
}

// Menu returns the menu last handed to the host.
func (manager *Manager) Menu() *fyne.Menu {
	return manager.menu
}

func (manager *Manager) refreshMenu() {
	manager.menu = fyne.NewMenu(menuTitle,
		manager.statusItem,
		fyne.NewMenuItem("Open page", func() {
			if manager.callbacks.OnShow != nil {
				manager.callbacks.OnShow()
			}
		}),
		manager.jumpItem,
		manager.dismissItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Preferences", func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	)
	if manager.host != nil {
		manager.host.SetSystemTrayMenu(manager.menu)
	}
}
