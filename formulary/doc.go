// Package formulary provides the plasma formulary quantities the dispersion
// solvers derive their coefficients from: Alfvén speed, ion sound speed,
// gyrofrequency, plasma frequency and thermal speed.
//
// All functions take and return SI floats; unit validation happens upstream in
// the dispersion package. Formulas follow the standard two-fluid conventions:
//
//	v_A    = B / sqrt(μ0 ρ),  ρ = n_i m_i + n_e m_e
//	c_s    = sqrt((γ_e Z k_B T_e + γ_i k_B T_i) / m_i)
//	ω_c    = |Z| e B / m
//	ω_p    = Z e sqrt(n / (ε0 m))
//	v_th   = sqrt(2 k_B T / m)
package formulary
