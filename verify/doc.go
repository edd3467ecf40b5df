// Package verify compares a numerical steady-state profile with the closed-form
// linear solution u(x) = vL + (vR − vL)·x/L of two-value diffusion.
//
// Everything here is a pure function of its inputs.
package verify
