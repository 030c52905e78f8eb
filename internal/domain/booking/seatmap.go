package booking

import "github.com/sanosuguru/go-cinema-seat-booking/internal/domain/seat"

// SeatState は座席マップ上の1席の描画状態を表す
type SeatState string

const (
	SeatAvailable SeatState = "available"
	SeatBooked    SeatState = "booked"
)

// SeatCell は座席マップ上の1席
type SeatCell struct {
	Coordinate seat.Coordinate
	Label      string
	State      SeatState
}

// SeatMap は作品の全座席グリッドの描画用スナップショット
type SeatMap struct {
	MovieID int
	Rows    int
	Cols    int
	Cells   []SeatCell // 行優先（A1, A2, ... E6）
}

// BuildSeatMap は販売済み集合から座席マップを組み立てる
func BuildSeatMap(movieID int, booked seat.Set) SeatMap {
	m := SeatMap{
		MovieID: movieID,
		Rows:    seat.GridRows,
		Cols:    seat.GridCols,
		Cells:   make([]SeatCell, 0, seat.GridRows*seat.GridCols),
	}
	for r := 0; r < seat.GridRows; r++ {
		for c := 0; c < seat.GridCols; c++ {
			coord := seat.Coordinate{Row: r, Col: c}
			state := SeatAvailable
			if booked.Contains(coord) {
				state = SeatBooked
			}
			m.Cells = append(m.Cells, SeatCell{
				Coordinate: coord,
				Label:      coord.Label(),
				State:      state,
			})
		}
	}
	return m
}
