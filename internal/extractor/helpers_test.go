package extractor

func float64Ptr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }
