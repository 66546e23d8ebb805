package kobraille

import "testing"

func TestBufferAppend(t *testing.T) {
	buf := BorrowBuffer()
	defer buf.Release()
	if buf.Len() != 0 {
		t.Fatalf("borrowed buffer should be empty, has %d cells", buf.Len())
	}
	buf.Append(NumberSign, 1)
	buf.Append(ThousandsSeparator)
	if buf.Len() != 3 {
		t.Errorf("expected 3 cells, have %d", buf.Len())
	}
	if buf.Cells().Digits() != "6012" {
		t.Errorf("expected cells 60 1 2, have %v", buf.Cells().Ints())
	}
}

func TestBufferCellsOutliveRelease(t *testing.T) {
	buf := BorrowBuffer()
	buf.Append(35, 18)
	cells := buf.Cells()
	buf.Release()
	other := BorrowBuffer()
	defer other.Release()
	other.Append(63, 63, 63)
	if !cells.Equal(Cells{35, 18}) {
		t.Errorf("cells changed after buffer was released: %v", cells.Ints())
	}
}

func TestBufferReuse(t *testing.T) {
	for i := 0; i < 100; i++ {
		buf := BorrowBuffer()
		if buf.Len() != 0 {
			t.Fatalf("buffer #%d not cleared", i)
		}
		buf.Append(Cell(i % 64))
		buf.Release()
	}
}
