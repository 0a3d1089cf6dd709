package fixpt

// The eight kinds as ready-made fixed-point types with a zero exponent.
// FromInt64 and FromUint64 return one of these.

type Uint8 uint8

func (x Uint8) Float32() float32 { return Float32(x, 0) }
func (x Uint8) Float64() float64 { return Float64(x, 0) }

type Int8 int8

func (x Int8) Float32() float32 { return Float32(x, 0) }
func (x Int8) Float64() float64 { return Float64(x, 0) }

type Uint16 uint16

func (x Uint16) Float32() float32 { return Float32(x, 0) }
func (x Uint16) Float64() float64 { return Float64(x, 0) }

type Int16 int16

func (x Int16) Float32() float32 { return Float32(x, 0) }
func (x Int16) Float64() float64 { return Float64(x, 0) }

type Uint32 uint32

func (x Uint32) Float32() float32 { return Float32(x, 0) }
func (x Uint32) Float64() float64 { return Float64(x, 0) }

type Int32 int32

func (x Int32) Float32() float32 { return Float32(x, 0) }
func (x Int32) Float64() float64 { return Float64(x, 0) }

type Uint64 uint64

func (x Uint64) Float32() float32 { return Float32(x, 0) }
func (x Uint64) Float64() float64 { return Float64(x, 0) }

type Int64 int64

func (x Int64) Float32() float32 { return Float32(x, 0) }
func (x Int64) Float64() float64 { return Float64(x, 0) }

var (
	_ Value = Uint8(0)
	_ Value = Int8(0)
	_ Value = Uint16(0)
	_ Value = Int16(0)
	_ Value = Uint32(0)
	_ Value = Int32(0)
	_ Value = Uint64(0)
	_ Value = Int64(0)
)
