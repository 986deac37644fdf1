// Package datafix is the conversion engine: data versions, per-type converter
// chains, and the dispatch order that replays them.
//
// A value of a data type is converted from version from to version to by
// running, in registration order, every converter whose version lies in
// (from, to]. Identity specific converters share that list and look at the
// identity field as it is when they are reached. Afterwards the walkers in
// effect at to descend into nested values of other data types and convert
// them over the same (from, to] range, so the whole tree ends up at to.
//
// Converters never fail. Input that does not have the expected shape is left
// alone, which keeps one odd value from aborting a batch migration.
package datafix
