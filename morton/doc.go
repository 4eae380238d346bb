// Package morton bit-interleaves integer coordinates into a single
// space-filling-curve code, used to seed the bvh builder's initial spatial
// ordering. Adjacent Morton codes correspond to spatially nearby points,
// which is all the builder needs: Morton order only seeds PLOC, it is not
// load-bearing for correctness.
//
// Encode is a total function: there is no failure mode. Coordinates are
// masked to the configured bit width, so out-of-range values wrap rather
// than error.
package morton
