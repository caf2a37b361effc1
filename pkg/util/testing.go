package util

import (
	"reflect"
	"testing"
)

func AssertExpected(t testing.TB, expected, got interface{}) bool {
	t.Helper()
	if !reflect.DeepEqual(expected, got) {
		t.Errorf("error, expected: %v, got: %v\n", expected, got)
		return false
	}
	return true
}

func AssertLen(t testing.TB, expected, got interface{}) bool {
	t.Helper()
	return AssertExpected(t, expected, got)
}

func AssertEqual(t testing.TB, expected, got interface{}) bool {
	t.Helper()
	return AssertExpected(t, expected, got)
}

func AssertTrue(t testing.TB, got interface{}) bool {
	t.Helper()
	return AssertExpected(t, true, got)
}

func AssertFalse(t testing.TB, got interface{}) bool {
	t.Helper()
	return AssertExpected(t, false, got)
}

func AssertNil(t testing.TB, got interface{}) bool {
	t.Helper()
	if got == nil {
		return true
	}
	v := reflect.ValueOf(got)
	switch v.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface, reflect.Func, reflect.Chan:
		if v.IsNil() {
			return true
		}
	}
	t.Errorf("error, expected: nil, got: %v\n", got)
	return false
}

func AssertNotNil(t testing.TB, got interface{}) bool {
	t.Helper()
	if got == nil {
		t.Errorf("error, expected non-nil value\n")
		return false
	}
	return true
}

// AssertWithin checks got lies in the half open interval [lo, hi)
func AssertWithin(t testing.TB, lo, hi, got float64) bool {
	t.Helper()
	if got < lo || got >= hi {
		t.Errorf("error, expected value in [%v, %v), got: %v\n", lo, hi, got)
		return false
	}
	return true
}
