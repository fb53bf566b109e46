package layout

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yml
var defaultLayout []byte

// Cell 是一个格子的编码列表。单层格子在 YAML 里写成标量，多层（如立交）写成列表。
type Cell struct {
	Codes []string
}

func (c *Cell) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		c.Codes = []string{node.Value}
		return nil
	case yaml.SequenceNode:
		var codes []string
		if err := node.Decode(&codes); err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		c.Codes = codes
		return nil
	default:
		return fmt.Errorf("line %d: cell must be a code or a list of codes", node.Line)
	}
}

func (c Cell) MarshalYAML() (any, error) {
	if len(c.Codes) == 1 {
		return c.Codes[0], nil
	}
	return c.Codes, nil
}

// Chunk 按行存放：chunk[j][i]。
type Chunk [][]Cell

type Layout struct {
	ChunkWidth  int     `yaml:"chunk_width"`
	ChunkHeight int     `yaml:"chunk_height"`
	ChunksWide  int     `yaml:"chunks_wide"`
	Chunks      []Chunk `yaml:"chunks"`
}

func (l *Layout) ChunksHigh() int {
	if l.ChunksWide <= 0 {
		return 0
	}
	return len(l.Chunks) / l.ChunksWide
}

// Validate 只校验形状，格子编码本身由棋盘解码时处理。
func (l *Layout) Validate() error {
	if l.ChunkWidth <= 0 || l.ChunkHeight <= 0 {
		return fmt.Errorf("chunk size must be positive, got %dx%d", l.ChunkWidth, l.ChunkHeight)
	}
	if l.ChunksWide <= 0 {
		return fmt.Errorf("chunks_wide must be positive, got %d", l.ChunksWide)
	}
	if len(l.Chunks) == 0 || len(l.Chunks)%l.ChunksWide != 0 {
		return fmt.Errorf("chunk count %d is not a multiple of chunks_wide %d", len(l.Chunks), l.ChunksWide)
	}
	for k, chunk := range l.Chunks {
		if len(chunk) != l.ChunkHeight {
			return fmt.Errorf("chunk %d: want %d rows, got %d", k, l.ChunkHeight, len(chunk))
		}
		for j, row := range chunk {
			if len(row) != l.ChunkWidth {
				return fmt.Errorf("chunk %d row %d: want %d cells, got %d", k, j, l.ChunkWidth, len(row))
			}
			for i, cell := range row {
				if len(cell.Codes) == 0 {
					return fmt.Errorf("chunk %d cell (%d,%d): empty code list", k, i, j)
				}
			}
		}
	}
	return nil
}

func Parse(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("decode layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Default 返回内置的 20 块布局。
func Default() (*Layout, error) {
	return Parse(defaultLayout)
}

// LoadOrDefault path 为空时使用内置布局。
func LoadOrDefault(path string) (*Layout, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}
