package mcpserver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anonkit/propview/internal/config"
	"github.com/anonkit/propview/internal/messages"
	"github.com/anonkit/propview/internal/model"
	"github.com/anonkit/propview/internal/observer"
	"github.com/anonkit/propview/internal/properties"
	"github.com/anonkit/propview/internal/render"
)

// PropertiesInput is the input schema for the properties MCP tool.
type PropertiesInput struct {
	Path      string `json:"path" jsonschema:"Snapshot file to inspect"`
	Mode      string `json:"mode,omitempty" jsonschema:"View to build: input or output (default: input)"`
	Format    string `json:"format,omitempty" jsonschema:"Output format: json, yaml, text (default: json)"`
	ZeroRange string `json:"zero_range,omitempty" jsonschema:"Relative loss when the lattice has no range: zero or omit (default: zero)"`
}

// CriteriaInput is the input schema for the criteria MCP tool.
type CriteriaInput struct {
	Path   string `json:"path" jsonschema:"Snapshot file whose privacy criteria are described"`
	Format string `json:"format,omitempty" jsonschema:"Output format: json, yaml, text (default: json)"`
}

// ValidateInput is the input schema for the validate MCP tool.
type ValidateInput struct {
	Path string `json:"path" jsonschema:"Snapshot file to validate"`
}

// boolPtr returns a pointer to a bool.
func boolPtr(b bool) *bool { return &b }

// registerTools adds all propview tools to the MCP server.
func registerTools(server *mcp.Server) {
	readOnly := &mcp.ToolAnnotations{
		ReadOnlyHint:    true,
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "properties",
		Description: "Build the property tree of an anonymization snapshot: dataset and attribute roles for the input view, or groups, information loss and privacy criteria of the selected transformation for the output view.",
		Annotations: readOnly,
	}, handleProperties)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "criteria",
		Description: "Describe the privacy criteria configured in an anonymization snapshot.",
		Annotations: readOnly,
	}, handleCriteria)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Validate an anonymization snapshot and report every problem found.",
		Annotations: readOnly,
	}, handleValidate)
}

// session is a loaded snapshot plus the settings of its directory.
type session struct {
	path     *PathInfo
	model    *model.Model
	settings config.Settings
	catalog  *messages.Catalog
}

func openSession(path string, cli config.Settings) (*session, error) {
	info, err := ResolveSnapshot(path)
	if err != nil {
		return nil, err
	}
	fileCfg, err := config.Load(info.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	settings := config.Merge(fileCfg, cli)
	if settings.Messages != "" && !filepath.IsAbs(settings.Messages) {
		settings.Messages = filepath.Join(info.Dir, settings.Messages)
	}

	catalog, err := messages.Load(settings.Messages)
	if err != nil {
		return nil, err
	}
	m, err := model.Load(info.AbsPath)
	if err != nil {
		return nil, err
	}
	return &session{path: info, model: m, settings: settings, catalog: catalog}, nil
}

func handleProperties(_ context.Context, _ *mcp.CallToolRequest, input PropertiesInput) (*mcp.CallToolResult, any, error) {
	r, err := renderer(input.Format)
	if err != nil {
		return nil, nil, err
	}
	s, err := openSession(input.Path, config.Settings{Mode: input.Mode, ZeroRange: input.ZeroRange})
	if err != nil {
		return nil, nil, err
	}
	mode, err := properties.ParseMode(s.settings.Mode)
	if err != nil {
		return nil, nil, err
	}
	zeroRange, err := properties.ParseZeroRangePolicy(s.settings.ZeroRange)
	if err != nil {
		return nil, nil, err
	}
	tree, err := observer.Build(s.model, mode, properties.Options{
		Messages:  s.catalog,
		Logger:    slog.Default(),
		ZeroRange: zeroRange,
	})
	enabled := err == nil
	if err != nil && !errors.Is(err, observer.ErrNothingToDisplay) {
		return nil, nil, err
	}

	return textResult(r, render.Document{
		Mode:     mode,
		Source:   s.path.AbsPath,
		Tree:     tree,
		Enabled:  enabled,
		Messages: s.catalog,
	})
}

func handleCriteria(_ context.Context, _ *mcp.CallToolRequest, input CriteriaInput) (*mcp.CallToolResult, any, error) {
	r, err := renderer(input.Format)
	if err != nil {
		return nil, nil, err
	}
	s, err := openSession(input.Path, config.Settings{})
	if err != nil {
		return nil, nil, err
	}

	tree := properties.DescribeCriteria(s.model.Config(), properties.Options{Messages: s.catalog})
	return textResult(r, render.Document{
		Mode:     properties.ModeOutput,
		Source:   s.path.AbsPath,
		Tree:     tree,
		Enabled:  !tree.IsEmpty(),
		Messages: s.catalog,
	})
}

func handleValidate(_ context.Context, _ *mcp.CallToolRequest, input ValidateInput) (*mcp.CallToolResult, any, error) {
	info, err := ResolveSnapshot(input.Path)
	if err != nil {
		return nil, nil, err
	}
	if _, err := model.Load(info.AbsPath); err != nil {
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
		}, nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("%s: ok", info.AbsPath)}},
	}, nil, nil
}

// renderer resolves the requested format. MCP consumers get JSON unless
// they ask for something else; the config file's format is not consulted.
func renderer(format string) (render.Renderer, error) {
	if format == "" {
		format = "json"
	}
	r, err := render.Get(format)
	if err != nil {
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	return r, nil
}

func textResult(r render.Renderer, doc render.Document) (*mcp.CallToolResult, any, error) {
	var buf bytes.Buffer
	if err := r.Render(doc, &buf); err != nil {
		return nil, nil, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: buf.String()},
		},
	}, nil, nil
}
