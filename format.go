package zmij

import (
	"fmt"
	"strconv"
)

var _ fmt.Stringer = DecFP{}

// String returns a diagnostic rendering of d such as "-66260701500000000e-50".
func (d DecFP) String() string {
	if d.Exp == NonFiniteExp {
		s := "nan"
		if d.Sig == 0 {
			s = "inf"
		}
		if d.Neg {
			return "-" + s
		}
		return s
	}

	buf := make([]byte, 0, DoubleBufferSize)
	if d.Neg {
		buf = append(buf, '-')
	}
	buf = strconv.AppendInt(buf, d.Sig, 10)
	if d.Exp != 0 {
		buf = append(buf, 'e')
		buf = strconv.AppendInt(buf, int64(d.Exp), 10)
	}
	return string(buf)
}
