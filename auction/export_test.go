// SPDX-License-Identifier: MIT

package auction

// Test bridge: the structural checker is a full scan and stays out of the
// production API.

// CheckStructure exposes checkStructure to auction_test.
func CheckStructure(inst *Instance) error { return inst.checkStructure() }
