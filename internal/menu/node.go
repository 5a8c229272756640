// Package menu models the menu trees presented to the user.
//
// A root menu owns submenus and a submenu owns leaf commands, separators or
// nested submenus. Command identifiers link a leaf to its activation handler.
package menu

import (
	"fmt"

	"snapview/internal/apperr"
)

const (
	NewWindowID          = "new_window"
	NewWindowText        = "New Window"
	NewWindowAccelerator = "CmdOrCtrl+N"

	FileMenuID   = "file"
	FileMenuText = "File"
)

type Kind int

const (
	KindMenu Kind = iota
	KindSubmenu
	KindItem
	KindSeparator
)

func (k Kind) String() string {
	switch k {
	case KindMenu:
		return "menu"
	case KindSubmenu:
		return "submenu"
	case KindItem:
		return "item"
	case KindSeparator:
		return "separator"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Node is one entry of a menu tree.
type Node struct {
	Kind        Kind
	ID          string
	Text        string
	Accelerator string
	Disabled    bool
	Children    []*Node
}

// Event is emitted by the host when a command is activated.
type Event struct {
	ID     string
	Window string
}

func NewMenu(children ...*Node) *Node {
	return &Node{Kind: KindMenu, Children: children}
}

func NewSubmenu(id, text string, children ...*Node) *Node {
	return &Node{Kind: KindSubmenu, ID: id, Text: text, Children: children}
}

func NewItem(id, text, accelerator string) *Node {
	return &Node{Kind: KindItem, ID: id, Text: text, Accelerator: accelerator}
}

func NewSeparator() *Node {
	return &Node{Kind: KindSeparator}
}

// NewWindowItem builds the "New Window" leaf command.
func NewWindowItem() *Node {
	return NewItem(NewWindowID, NewWindowText, NewWindowAccelerator)
}

// NewFileMenu builds a root menu holding a single File submenu with the
// "New Window" command.
func NewFileMenu() *Node {
	return NewMenu(NewSubmenu(FileMenuID, FileMenuText, NewWindowItem()))
}

func (n *Node) container() bool {
	return n.Kind == KindMenu || n.Kind == KindSubmenu
}

// Submenus returns the direct submenu children of n.
func (n *Node) Submenus() []*Node {
	var subs []*Node
	for _, c := range n.Children {
		if c.Kind == KindSubmenu {
			subs = append(subs, c)
		}
	}
	return subs
}

// Insert places child at index among n's children. An index equal to the
// number of children appends.
func (n *Node) Insert(child *Node, index int) error {
	if !n.container() {
		return fmt.Errorf("%w: cannot insert into %s %q", apperr.ErrMenuDiscovery, n.Kind, n.ID)
	}
	if child == nil {
		return fmt.Errorf("%w: nil menu node", apperr.ErrMenuDiscovery)
	}
	if index < 0 || index > len(n.Children) {
		return fmt.Errorf("%w: insert index %d out of range [0,%d]", apperr.ErrMenuDiscovery, index, len(n.Children))
	}
	n.Children = append(n.Children, nil)
	copy(n.Children[index+1:], n.Children[index:])
	n.Children[index] = child
	return nil
}

// Walk visits n and its descendants depth first. Returning false from fn
// stops the walk.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// Find returns the first node with the given id.
func (n *Node) Find(id string) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if c.ID == id && c.Kind != KindSeparator {
			found = c
			return false
		}
		return true
	})
	return found
}

// FindSubmenu locates a top-level submenu. The stable id is tried first;
// display text is the fallback and must match exactly one submenu.
func (n *Node) FindSubmenu(id, text string) (*Node, error) {
	subs := n.Submenus()
	if id != "" {
		for _, s := range subs {
			if s.ID == id {
				return s, nil
			}
		}
	}

	var matches []*Node
	for _, s := range subs {
		if s.Text == text {
			matches = append(matches, s)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: no %q submenu among %d top-level submenus", apperr.ErrMenuDiscovery, text, len(subs))
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%w: %d submenus titled %q", apperr.ErrMenuDiscovery, len(matches), text)
	}
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := *n
	if n.Children != nil {
		c.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = child.Clone()
		}
	}
	return &c
}

// Validate checks that command identifiers are unique within the tree and
// that at most one File submenu hangs off the root.
func (n *Node) Validate() error {
	if n.Kind != KindMenu {
		return fmt.Errorf("%w: root is a %s, want menu", apperr.ErrMenuDiscovery, n.Kind)
	}

	files := 0
	for _, s := range n.Submenus() {
		if s.ID == FileMenuID || s.Text == FileMenuText {
			files++
		}
	}
	if files > 1 {
		return fmt.Errorf("%w: %d File submenus attached", apperr.ErrMenuDiscovery, files)
	}

	seen := make(map[string]bool)
	var err error
	n.Walk(func(c *Node) bool {
		if c != n && c.Kind == KindMenu {
			err = fmt.Errorf("%w: nested root menu", apperr.ErrMenuDiscovery)
			return false
		}
		if c.Kind != KindItem {
			return true
		}
		if c.ID == "" {
			err = fmt.Errorf("%w: command %q has no identifier", apperr.ErrMenuDiscovery, c.Text)
			return false
		}
		if seen[c.ID] {
			err = fmt.Errorf("%w: duplicate command identifier %q", apperr.ErrMenuDiscovery, c.ID)
			return false
		}
		seen[c.ID] = true
		return true
	})
	return err
}
