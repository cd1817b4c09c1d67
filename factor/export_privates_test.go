// SPDX-License-Identifier: MIT

package factor

// White-box bridge: exposes unexported kernels to factor_test only.
var (
	AddMod  = addMod
	RhoStep = rhoStep
)
