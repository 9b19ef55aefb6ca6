package maafocus

import (
	"errors"
	"fmt"

	"github.com/MaaXYZ/maa-framework-go/v4"
)

const nodeName = "_GO_SERVICE_FOCUS_"

// ErrNilContext indicates the provided context is nil.
var ErrNilContext = errors.New("context is nil")

// NodeActionStarting sets the focus to the node action starting event
// content is the content to be displayed on the UI
func NodeActionStarting(ctx *maa.Context, content string) error {
	if ctx == nil {
		return ErrNilContext
	}

	pp := maa.NewPipeline()
	pp.AddNode(maa.NewNode(nodeName).
		SetFocus(map[string]any{
			maa.EventNodeAction.Starting(): content,
		}).
		SetPreDelay(0).
		SetPostDelay(0),
	)
	if _, err := ctx.RunTask(nodeName, pp); err != nil {
		return fmt.Errorf("failed to run focus node: %w", err)
	}
	return nil
}

// Bearing shows the detected view bearing on the UI.
func Bearing(ctx *maa.Context, bearing float64) error {
	return NodeActionStarting(ctx, FormatBearing(bearing))
}

// FormatBearing renders a bearing as the focus text, e.g. "视角朝向 123.4°".
func FormatBearing(bearing float64) string {
	return fmt.Sprintf("视角朝向 %.1f°", bearing)
}
