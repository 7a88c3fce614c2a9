package notion

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// Block is one content block of a page body.
type Block struct {
	ID       string
	Type     string
	Text     string
	Checked  bool
	Language string
	URL      string
}

// BlockList is the children of a page or block.
type BlockList struct {
	Blocks     []Block
	NextCursor string
	HasMore    bool
}

var _ decoder = (*BlockList)(nil)

func (l *BlockList) FromJSON(node gjson.Result) error {
	results := node.Get("results")
	if !results.IsArray() {
		return missingField("results")
	}

	out := BlockList{
		NextCursor: optionalString(node, "next_cursor"),
		HasMore:    node.Get("has_more").Bool(),
	}
	for _, result := range results.Array() {
		block, err := newBlock(result)
		if err != nil {
			return err
		}
		out.Blocks = append(out.Blocks, block)
	}

	*l = out
	return nil
}

func newBlock(node gjson.Result) (Block, error) {
	kind, err := String(node, "type")
	if err != nil {
		return Block{}, err
	}
	payload, err := TaggedPayload(node)
	if err != nil {
		return Block{}, err
	}

	block := Block{
		ID:       optionalString(node, "id"),
		Type:     kind,
		Text:     richText(payload.Get("rich_text")),
		Checked:  payload.Get("checked").Bool(),
		Language: optionalString(payload, "language"),
		URL:      optionalString(payload, "url"),
	}
	if block.URL == "" {
		block.URL = fileURL(payload)
	}
	if block.Text == "" {
		block.Text = richText(payload.Get("caption"))
	}

	return block, nil
}

// richText renders a rich-text segment array to inline markdown.
func richText(segments gjson.Result) string {
	var sb strings.Builder
	for _, segment := range segments.Array() {
		text := optionalString(segment, "plain_text")
		if text == "" {
			continue
		}
		annotations := segment.Get("annotations")
		if annotations.Get("code").Bool() {
			text = "`" + text + "`"
		}
		if annotations.Get("bold").Bool() {
			text = "**" + text + "**"
		}
		if annotations.Get("italic").Bool() {
			text = "*" + text + "*"
		}
		if annotations.Get("strikethrough").Bool() {
			text = "~~" + text + "~~"
		}
		if href := optionalString(segment, "href"); href != "" {
			text = "[" + text + "](" + href + ")"
		}
		sb.WriteString(text)
	}
	return sb.String()
}

// Markdown renders the block list as a markdown document.
func (l *BlockList) Markdown() string {
	lines := make([]string, 0, len(l.Blocks))
	for _, b := range l.Blocks {
		line, ok := b.markdown()
		if !ok {
			logrus.Debugf("skipping unsupported block %s of type %s", b.ID, b.Type)
			continue
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n\n")
}

func (b Block) markdown() (string, bool) {
	switch b.Type {
	case "paragraph":
		return b.Text, true
	case "heading_1":
		return "# " + b.Text, true
	case "heading_2":
		return "## " + b.Text, true
	case "heading_3":
		return "### " + b.Text, true
	case "bulleted_list_item":
		return "- " + b.Text, true
	case "numbered_list_item":
		return "1. " + b.Text, true
	case "to_do":
		if b.Checked {
			return "- [x] " + b.Text, true
		}
		return "- [ ] " + b.Text, true
	case "quote", "callout":
		return "> " + b.Text, true
	case "code":
		return "```" + b.Language + "\n" + b.Text + "\n```", true
	case "divider":
		return "---", true
	case "image":
		return "![" + b.Text + "](" + b.URL + ")", true
	case "bookmark", "embed", "link_preview":
		return "[" + b.URL + "](" + b.URL + ")", true
	default:
		return "", false
	}
}
