/* gocsis - DOCSIS Cable Modem Configuration Codec
 *
 * Copyright (C) 2026 gocsis authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package pipeline

import "github.com/cornelk/hashmap"

// counters is the global lock-free processing counter table, shared by all
// workers across all processors.
var counters = &hashmap.HashMap{}

// GetCounter returns the counter value at the specified key or 0 if it does not exist.
func GetCounter(key string) int {
	value, isOk := counters.GetStringKey(key)
	if !isOk {
		return 0
	}
	return value.(int)
}

// setCounter atomically sets the value of the specified counter key only if it is equal to the expected value, returning whether the operation was successful.
func setCounter(key string, expected interface{}, value interface{}) bool {
	return counters.Cas(key, expected, value)
}

// AddToCounter adds the specified value to the given counter key, setting as value if uninitialized.
func AddToCounter(key string, value int) {
	wasSet := false
	for !wasSet {
		expected, isOk := counters.GetStringKey(key)
		if isOk {
			wasSet = setCounter(key, expected, expected.(int)+value)
		} else {
			_, wasSet = counters.GetOrInsert(key, value)
			// We need to flip this because it returns false if set
			wasSet = !wasSet
		}
	}
}

// Counters returns a snapshot of all counter keys and values.
func Counters() map[string]int {
	snapshot := make(map[string]int, counters.Len())
	for kv := range counters.Iter() {
		snapshot[kv.Key.(string)] = kv.Value.(int)
	}
	return snapshot
}
