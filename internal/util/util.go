package util

import "time"

func Ptr[T any](v T) *T {
	return &v
}

func StringPointer(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func MillisSince(start time.Time) int64 {
	return time.Since(start).Milliseconds()
}
