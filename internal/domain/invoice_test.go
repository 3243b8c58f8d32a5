package domain

import "testing"

func TestInvoiceAmounts(t *testing.T) {
	tests := []struct {
		name       string
		fee        int64
		gstPercent int64
		subtotal   int64
		gst        int64
		total      int64
	}{
		{"typical fee", 2000, 17, 2000, 340, 2340},
		{"truncating gst", 999, 17, 999, 169, 1168},
		{"zero rate", 1500, 0, 1500, 0, 1500},
		{"zero fee", 0, 17, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subtotal, gst, total := InvoiceAmounts(tt.fee, tt.gstPercent)
			if subtotal != tt.subtotal || gst != tt.gst || total != tt.total {
				t.Fatalf("InvoiceAmounts(%d, %d) = (%d, %d, %d), expected (%d, %d, %d)",
					tt.fee, tt.gstPercent, subtotal, gst, total, tt.subtotal, tt.gst, tt.total)
			}
		})
	}
}
