package dbgprint

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bearcove/hotmeal/patch"
)

// Sprint renders patches as one line per patch, in order, for test failure
// messages and manual tracing. Sprint always requests color; fatih/color
// itself omits the escape codes when its package-level NoColor is set
// (for instance when the process's stdout is not a terminal).
func Sprint(patches []patch.Patch) string {
	c := newColorSet(false)
	var b strings.Builder
	for i, p := range patches {
		fmt.Fprintf(&b, "%3d  %s\n", i, sprintPatch(p, c))
	}
	return b.String()
}

func sprintPatch(p patch.Patch, c *colorSet) string {
	kind := c.sprint(patchKindRole, p.Kind.String())
	switch p.Kind {
	case patch.SetTextKind:
		return fmt.Sprintf("%s %s text=%s", kind, sprintRef(p.At, c), strconv.Quote(p.Text))
	case patch.SetAttributeKind:
		return fmt.Sprintf("%s %s %s=%s", kind, sprintRef(p.At, c), p.Name.LocalString(), strconv.Quote(p.Value))
	case patch.RemoveAttributeKind:
		return fmt.Sprintf("%s %s %s", kind, sprintRef(p.At, c), p.Name.LocalString())
	case patch.UpdatePropertiesKind:
		return fmt.Sprintf("%s %s (%d props)", kind, sprintRef(p.At, c), len(p.Props))
	case patch.InsertElementKind, patch.InsertTextKind, patch.InsertCommentKind:
		return fmt.Sprintf("%s parent=%s index=%d", kind, sprintRef(p.InsertAt.Parent, c), p.InsertAt.Index)
	case patch.RemoveKind:
		return fmt.Sprintf("%s %s", kind, sprintRef(p.At, c))
	case patch.MoveKind:
		return fmt.Sprintf("%s %s -> parent=%s index=%d", kind, sprintRef(p.At, c), sprintRef(p.InsertAt.Parent, c), p.InsertAt.Index)
	default:
		return kind
	}
}

func sprintRef(r patch.NodeRef, c *colorSet) string {
	if r.IsSlot() {
		return c.sprint(refRole, fmt.Sprintf("Slot(%d,%v)", r.Slot, r.Path))
	}
	return c.sprint(refRole, fmt.Sprintf("Path%v", r.Path))
}
