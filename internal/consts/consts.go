package consts

const (
	MIL_TO_MM   = 0.0254    // 1 mil (mm)
	MM2_TO_MIL2 = 1550.0031 // 1 mm^2 (mil^2)
	OZ_TO_MM    = 0.034287  // Copper weight 1 oz/ft^2 (mm)
	OZ_TO_UM    = 35.0      // Copper weight 1 oz/ft^2, plating rule of thumb (um)
)

const (
	IPC_K_EXTERNAL = 0.048 // IPC-2221 k, outer layer
	IPC_K_INTERNAL = 0.024 // IPC-2221 k, inner layer
	IPC_DT_EXP     = 0.44  // Temperature rise exponent
	IPC_AREA_EXP   = 0.725 // Cross-section exponent
)

const (
	CU_RHO_CM    = 1.72e-6  // Copper resistivity at 20C (ohm*cm)
	CU_RHO_MM    = 1.724e-5 // Copper resistivity at 20C (ohm*mm)
	CU_ALPHA     = 0.00393  // Copper temperature coefficient (1/K)
	CU_REF_TEMP  = 20.0     // Resistivity reference (C)
	AMBIENT_TEMP = 25.0     // Assumed ambient (C)
)
