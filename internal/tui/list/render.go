package listview

import (
	"fmt"
	"strings"

	"github.com/rshade/vlist/internal/vlist"
)

// indexWidth is the width of the row number gutter.
const indexWidth = 7

// FormatFunc formats one item. index is the item's position in the full
// collection.
type FormatFunc[T any] func(index int, item T) string

// DefaultRender renders each item of the window as a striped row with a
// 1-based row number. Every row is exactly ItemStyle.Height lines tall so the
// host can map rendered lines back to document rows.
func DefaultRender[T any](format FormatFunc[T]) vlist.RenderFunc[T] {
	return func(c vlist.Content[T]) string {
		if len(c.Items) == 0 {
			return ""
		}

		h := c.ItemStyle.Height
		var sb strings.Builder
		for i, item := range c.Items {
			index := c.First + i

			style := ItemStyle
			if index%2 == 1 {
				style = StripeStyle
			}

			gutter := IndexStyle.Render(fmt.Sprintf("%*d ", indexWidth-1, index+1))
			row := style.Height(h).MaxHeight(h).Render(gutter + format(index, item))

			if i > 0 {
				sb.WriteByte('\n')
			}
			sb.WriteString(row)
		}
		return sb.String()
	}
}

// StringFormat formats a string item as-is.
func StringFormat(_ int, item string) string {
	return item
}
