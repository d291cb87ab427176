// Package knowledge holds the static, language-agnostic lookup tables:
// one KnowledgeRecord per service category plus a small FAQ table.
// Everything here is read-only after startup.
package knowledge

import "github.com/quickfix/assistant-go/internal/domain"

// Store provides lookups over the static tables. It carries no mutable
// state and is safe for concurrent use.
type Store struct {
	records map[domain.ServiceType]*domain.KnowledgeRecord
	faq     []domain.FAQEntry
}

// NewStore builds the store from the compiled-in tables.
func NewStore() *Store {
	records := make(map[domain.ServiceType]*domain.KnowledgeRecord, len(serviceRecords))
	for i := range serviceRecords {
		rec := &serviceRecords[i]
		records[rec.Service] = rec
	}
	return &Store{records: records, faq: faqTable}
}

// Service returns the knowledge record for the given service type,
// or nil when the type is unknown.
func (s *Store) Service(t domain.ServiceType) *domain.KnowledgeRecord {
	return s.records[t]
}

// FAQ returns the FAQ table in declaration order.
func (s *Store) FAQ() []domain.FAQEntry {
	return s.faq
}

var serviceRecords = []domain.KnowledgeRecord{
	{
		Service:     domain.ServicePlumbing,
		Description: "Repair and installation of water supply, drainage and sanitary fittings for homes.",
		CommonIssues: []string{
			"Leaking taps and pipes",
			"Blocked drains and sinks",
			"Running or broken toilets",
			"Low water pressure",
			"Water heater faults",
		},
		Tips: []string{
			"Know where your main shut-off valve is before an emergency",
			"Avoid pouring oil or food waste down the sink",
			"Fix small drips early; they grow into big leaks",
		},
		EmergencySigns: []string{
			"Water flooding into living areas",
			"Burst pipe or uncontrolled leak",
			"Sewage backing up",
		},
		TechnicianProfile: domain.TechnicianProfile{
			Qualifications:        []string{"NVQ Level 3 Plumbing or equivalent", "2+ years field experience"},
			Skills:                []string{"Pipe fitting", "Leak detection", "Fixture installation", "Drain clearing"},
			Tools:                 []string{"Pipe wrench", "Drain snake", "Sealants and fittings", "Pressure tester"},
			VerificationStatement: "All QuickFix plumbers are background-checked and certified.",
		},
		AvgDuration:  "1-3 hours",
		AvgCostRange: "LKR 1,500 - 5,000",
	},
	{
		Service:     domain.ServiceElectrical,
		Description: "Safe diagnosis and repair of household wiring, sockets, lighting and distribution boards.",
		CommonIssues: []string{
			"Power failure in part of the house",
			"Tripping breakers",
			"Faulty sockets and switches",
			"Flickering lights",
			"Wiring upgrades",
		},
		Tips: []string{
			"Never work on live wiring yourself",
			"Label your distribution board circuits",
			"Replace scorched or discolored sockets immediately",
		},
		EmergencySigns: []string{
			"Burning smell from sockets or the board",
			"Sparks or smoke",
			"Electric shock from an appliance or switch",
		},
		TechnicianProfile: domain.TechnicianProfile{
			Qualifications:        []string{"Certified electrician (CEB approved)", "Wiring regulations training"},
			Skills:                []string{"Fault finding", "Rewiring", "Panel upgrades", "Earthing checks"},
			Tools:                 []string{"Multimeter", "Insulation tester", "Wire strippers", "Voltage detector"},
			VerificationStatement: "All QuickFix electricians are licensed and safety-audited.",
		},
		AvgDuration:  "1-4 hours",
		AvgCostRange: "LKR 2,000 - 6,000",
	},
	{
		Service:     domain.ServiceCarpentry,
		Description: "Repair and custom work on doors, windows, furniture and wooden fittings.",
		CommonIssues: []string{
			"Sticking doors and windows",
			"Broken hinges and handles",
			"Damaged furniture joints",
			"Loose shelving",
		},
		Tips: []string{
			"Keep wooden fittings away from direct water exposure",
			"Tighten loose screws before the joint wears out",
			"Re-varnish outdoor woodwork yearly",
		},
		EmergencySigns: []string{
			"Door that cannot be secured or locked",
			"Collapsed shelving or furniture posing a hazard",
		},
		TechnicianProfile: domain.TechnicianProfile{
			Qualifications:        []string{"Apprenticeship-trained carpenter", "3+ years workshop experience"},
			Skills:                []string{"Joinery", "Door and window fitting", "Furniture repair", "Finishing"},
			Tools:                 []string{"Saw set", "Chisels", "Power drill", "Clamps and levels"},
			VerificationStatement: "All QuickFix carpenters are reference-checked craftsmen.",
		},
		AvgDuration:  "2-5 hours",
		AvgCostRange: "LKR 1,500 - 7,000",
	},
	{
		Service:     domain.ServicePainting,
		Description: "Interior and exterior painting, wall preparation and finishing.",
		CommonIssues: []string{
			"Peeling or flaking paint",
			"Damp patches and stains",
			"Cracked wall surfaces",
			"Color matching for touch-ups",
		},
		Tips: []string{
			"Fix damp problems before repainting",
			"Use primer on new or patched surfaces",
			"Ventilate rooms well while paint dries",
		},
		EmergencySigns: []string{
			"Large-scale flaking revealing damp structural walls",
		},
		TechnicianProfile: domain.TechnicianProfile{
			Qualifications:        []string{"Trade-certified painter", "Surface preparation training"},
			Skills:                []string{"Wall preparation", "Brush and roller finishing", "Spray painting", "Waterproof coating"},
			Tools:                 []string{"Rollers and brushes", "Sanding kit", "Filler and primer", "Drop cloths"},
			VerificationStatement: "All QuickFix painters are vetted for quality workmanship.",
		},
		AvgDuration:  "4-8 hours",
		AvgCostRange: "LKR 3,000 - 15,000",
	},
	{
		Service:     domain.ServiceCleaning,
		Description: "Deep cleaning and housekeeping for homes and apartments.",
		CommonIssues: []string{
			"Post-renovation dust",
			"Kitchen grease build-up",
			"Bathroom mold and scale",
			"Sofa and carpet stains",
		},
		Tips: []string{
			"Schedule deep cleaning quarterly",
			"Deal with mold early; it spreads fast in humid weather",
			"Declutter before the crew arrives to save time",
		},
		EmergencySigns: []string{
			"Flood or sewage aftermath needing sanitation",
		},
		TechnicianProfile: domain.TechnicianProfile{
			Qualifications:        []string{"Trained housekeeping crew", "Chemical handling briefing"},
			Skills:                []string{"Deep cleaning", "Stain removal", "Sanitization", "Upholstery care"},
			Tools:                 []string{"Industrial vacuum", "Steam cleaner", "Approved detergents", "Microfiber kit"},
			VerificationStatement: "All QuickFix cleaning crews are background-checked and supervised.",
		},
		AvgDuration:  "3-6 hours",
		AvgCostRange: "LKR 2,500 - 8,000",
	},
	{
		Service:     domain.ServiceApplianceRepair,
		Description: "Diagnosis and repair of household appliances: refrigerators, washing machines, microwaves and more.",
		CommonIssues: []string{
			"Fridge not cooling",
			"Washing machine not draining or spinning",
			"Microwave not heating",
			"Unusual noise or vibration",
		},
		Tips: []string{
			"Keep fridge coils dust-free for better cooling",
			"Do not overload the washing machine drum",
			"Use a voltage stabilizer in areas with unstable power",
		},
		EmergencySigns: []string{
			"Appliance sparking or tripping the breaker",
			"Gas smell from a gas appliance",
		},
		TechnicianProfile: domain.TechnicianProfile{
			Qualifications:        []string{"Appliance service training (multi-brand)", "Refrigerant handling certificate"},
			Skills:                []string{"Compressor diagnosis", "Motor and pump replacement", "Control board repair"},
			Tools:                 []string{"Multimeter", "Refrigerant gauge set", "Spare part kit", "Thermal probe"},
			VerificationStatement: "All QuickFix appliance technicians are brand-trained and verified.",
		},
		AvgDuration:  "1-3 hours",
		AvgCostRange: "LKR 2,000 - 10,000",
	},
	{
		Service:     domain.ServiceHVAC,
		Description: "Air conditioning and ventilation installation, servicing and gas refilling.",
		CommonIssues: []string{
			"AC not cooling",
			"Water dripping from indoor unit",
			"Bad odor from vents",
			"High electricity usage",
		},
		Tips: []string{
			"Clean AC filters monthly",
			"Service split units every six months",
			"Keep the outdoor unit shaded and unobstructed",
		},
		EmergencySigns: []string{
			"Ice forming on the unit",
			"Refrigerant leak (hissing sound, oily residue)",
		},
		TechnicianProfile: domain.TechnicianProfile{
			Qualifications:        []string{"HVAC service certification", "Refrigerant handling license"},
			Skills:                []string{"Gas refilling", "Compressor service", "Duct cleaning", "Thermostat calibration"},
			Tools:                 []string{"Manifold gauge", "Vacuum pump", "Leak detector", "Fin comb"},
			VerificationStatement: "All QuickFix HVAC technicians are licensed for refrigerant work.",
		},
		AvgDuration:  "1-3 hours",
		AvgCostRange: "LKR 2,500 - 9,000",
	},
	{
		Service:     domain.ServiceLocksmith,
		Description: "Lock repair, replacement, key cutting and lockout assistance.",
		CommonIssues: []string{
			"Locked out of home",
			"Jammed or worn lock",
			"Broken key inside the lock",
			"Upgrading to secure locks",
		},
		Tips: []string{
			"Keep a spare key with a trusted neighbor",
			"Lubricate locks twice a year with graphite, not oil",
			"Replace locks after losing a key",
		},
		EmergencySigns: []string{
			"Locked out with a child or stove inside",
			"Lock damaged after a break-in attempt",
		},
		TechnicianProfile: domain.TechnicianProfile{
			Qualifications:        []string{"Certified locksmith", "Police-verified identity"},
			Skills:                []string{"Non-destructive entry", "Lock replacement", "Key cutting", "Security upgrades"},
			Tools:                 []string{"Pick set", "Key cutting machine", "Drill with lock bits", "Replacement cylinders"},
			VerificationStatement: "All QuickFix locksmiths are police-verified for your safety.",
		},
		AvgDuration:  "30 minutes - 2 hours",
		AvgCostRange: "LKR 1,000 - 4,500",
	},
}
