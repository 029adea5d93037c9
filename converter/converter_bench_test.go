package converter

import "testing"

func BenchmarkConvertBytes(b *testing.B) {
	data := []byte(userServiceWSDL)
	c := New()
	c.IncludeInfo = false

	b.ReportAllocs()
	for b.Loop() {
		if _, err := c.ConvertBytes(data); err != nil {
			b.Fatal(err)
		}
	}
}
