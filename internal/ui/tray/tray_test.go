package tray

import (
	"testing"

	"fyne.io/fyne/v2"
)

type fakeHost struct {
	menus []*fyne.Menu
}

func (host *fakeHost) SetSystemTrayMenu(menu *fyne.Menu) {
	host.menus = append(host.menus, menu)
}

func findItem(t *testing.T, menu *fyne.Menu, label string) *fyne.MenuItem {
	t.Helper()
	for _, item := range menu.Items {
		if item.Label == label {
			return item
		}
	}
	t.Fatalf("menu has no %q item", label)
	return nil
}

func TestNewInstallsMenu(t *testing.T) {
	host := &fakeHost{}
	manager := New(host, []Section{{ID: "about", Label: "About"}}, Callbacks{})
	if len(host.menus) != 1 || host.menus[0] != manager.Menu() {
		t.Fatalf("installed %d menus", len(host.menus))
	}
	if !findItem(t, manager.Menu(), "Dismiss banner").Disabled {
		t.Error("dismiss enabled before any banner")
	}
}

func TestJumpShowsThenScrolls(t *testing.T) {
	var calls []string
	manager := New(&fakeHost{}, []Section{{ID: "prizes", Label: "Prizes"}}, Callbacks{
		OnShow: func() { calls = append(calls, "show") },
		OnJump: func(id string) { calls = append(calls, "jump:"+id) },
	})

	jump := findItem(t, manager.Menu(), "Jump to")
	if jump.ChildMenu == nil || len(jump.ChildMenu.Items) != 1 {
		t.Fatal("jump submenu missing")
	}
	jump.ChildMenu.Items[0].Action()

	if len(calls) != 2 || calls[0] != "show" || calls[1] != "jump:prizes" {
		t.Errorf("calls = %v", calls)
	}
}

func TestStatusAndBanner(t *testing.T) {
	host := &fakeHost{}
	dismissed := 0
	manager := New(host, nil, Callbacks{OnDismiss: func() { dismissed++ }})

	manager.SetStatus("Starts in 2d 01h 00m")
	manager.SetStatus("Starts in 2d 01h 00m")
	if got := findItem(t, manager.Menu(), "Status: Starts in 2d 01h 00m"); !got.Disabled {
		t.Error("status item should not be clickable")
	}
	if len(host.menus) != 2 {
		t.Errorf("menu rebuilt %d times, want 2", len(host.menus))
	}

	manager.SetBannerVisible(true)
	dismiss := findItem(t, manager.Menu(), "Dismiss banner")
	if dismiss.Disabled {
		t.Fatal("dismiss disabled while banner visible")
	}
	dismiss.Action()
	if dismissed != 1 {
		t.Errorf("dismissed = %d", dismissed)
	}
}

func TestNilCallbacksAreSafe(t *testing.T) {
	manager := New(nil, []Section{{ID: "home", Label: "Home"}}, Callbacks{})
	for _, item := range manager.Menu().Items {
		if item.Action != nil {
			item.Action()
		}
	}
	findItem(t, manager.Menu(), "Jump to").ChildMenu.Items[0].Action()
}
