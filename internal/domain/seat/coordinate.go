package seat

import "fmt"

// 座席グリッドの寸法（5行×6列、行A〜E・列1〜6）
const (
	GridRows = 5
	GridCols = 6
)

var rowLetters = "ABCDE"

// Coordinate はグリッド内の座席位置を表す
// 等価性は構造的（同じ行・列なら同一座席）
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NewCoordinate は座標を作成し、グリッド範囲を検証する
func NewCoordinate(row, col int) (Coordinate, error) {
	c := Coordinate{Row: row, Col: col}
	if !c.InBounds() {
		return Coordinate{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}
	return c, nil
}

// InBounds は座標がグリッド内に収まっているかを返す
func (c Coordinate) InBounds() bool {
	return c.Row >= 0 && c.Row < GridRows && c.Col >= 0 && c.Col < GridCols
}

// Label は "A1" 形式の座席ラベルを返す
// グリッド外の座標には空文字を返す
func (c Coordinate) Label() string {
	if !c.InBounds() {
		return ""
	}
	return fmt.Sprintf("%c%d", rowLetters[c.Row], c.Col+1)
}

// Set は座席座標の集合
type Set map[Coordinate]struct{}

// NewSet は与えられた座標からなる集合を作成する
func NewSet(coords ...Coordinate) Set {
	s := make(Set, len(coords))
	for _, c := range coords {
		s[c] = struct{}{}
	}
	return s
}

// Contains は座標が集合に含まれるかを返す
func (s Set) Contains(c Coordinate) bool {
	_, ok := s[c]
	return ok
}

// Add は座標を集合に追加する
func (s Set) Add(c Coordinate) {
	s[c] = struct{}{}
}

// Clone は集合の複製を返す
func (s Set) Clone() Set {
	clone := make(Set, len(s))
	for c := range s {
		clone[c] = struct{}{}
	}
	return clone
}
