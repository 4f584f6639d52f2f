package catalog

// RequirementProfile is one regulatory checklist: the focus label shown in
// analysis summaries, the ordered required content items and the regulations
// they trace back to. Entries are compiled-in constants so the checklists stay
// auditable as data.
type RequirementProfile struct {
	Focus        string   `json:"focus"`
	Requirements []string `json:"requirements"`
	Regulations  []string `json:"regulations"`
}

var requirementProfiles = map[ModuleType]RequirementProfile{
	ModuleDPIA: {
		Focus: "Data Protection Impact Assessment",
		Requirements: []string{
			"Deskripsi sistematis aktivitas pemrosesan data",
			"Penilaian kebutuhan dan proporsionalitas pemrosesan",
			"Identifikasi risiko terhadap hak subjek data",
			"Langkah mitigasi dan pengamanan risiko",
			"Konsultasi dengan Data Protection Officer",
			"Persetujuan dan tanda tangan penanggung jawab",
		},
	},
	ModuleRoPA: {
		Focus: "Records of Processing Activities",
		Requirements: []string{
			"Identitas pengendali data dan perwakilan",
			"Tujuan pemrosesan data pribadi",
			"Kategori subjek data dan data pribadi",
			"Kategori penerima data",
			"Transfer data ke negara ketiga beserta pengamanannya",
			"Jangka waktu retensi data",
			"Gambaran langkah pengamanan teknis dan organisasi",
		},
	},
	ModuleDSR: {
		Focus: "Data Subject Rights Handling",
		Requirements: []string{
			"Identitas dan verifikasi subjek data",
			"Jenis permintaan hak subjek data",
			"Tenggat waktu penyelesaian permintaan",
			"Catatan tindakan yang diambil",
			"Komunikasi hasil kepada subjek data",
		},
	},
	ModuleIncident: {
		Focus: "Incident & Breach Management",
		Requirements: []string{
			"Kronologi dan deskripsi insiden",
			"Kategori data dan jumlah subjek terdampak",
			"Penilaian dampak dan tingkat keparahan",
			"Tindakan penanganan dan pemulihan",
			"Notifikasi kepada otoritas dan subjek data",
			"Evaluasi dan pembelajaran pasca insiden",
		},
	},
	ModuleRisk: {
		Focus: "Risk Assessment",
		Requirements: []string{
			"Identifikasi aset dan konteks risiko",
			"Analisis kemungkinan dan dampak",
			"Kriteria evaluasi dan tingkat penerimaan risiko",
			"Rencana perlakuan risiko",
			"Pemilik risiko dan penanggung jawab mitigasi",
			"Jadwal peninjauan berkala",
		},
	},
	ModuleVendor: {
		Focus: "Third-Party / Vendor Management",
		Requirements: []string{
			"Profil dan klasifikasi vendor",
			"Penilaian risiko pihak ketiga",
			"Klausul kontraktual perlindungan data",
			"Hasil due diligence keamanan",
			"Rencana pemantauan dan evaluasi berkala",
		},
	},
	ModuleContinuity: {
		Focus: "Business Continuity Planning",
		Requirements: []string{
			"Analisis dampak bisnis (BIA)",
			"Strategi pemulihan dan RTO/RPO",
			"Prosedur tanggap darurat",
			"Rencana komunikasi krisis",
			"Jadwal pengujian dan latihan",
		},
	},
	ModuleVulnerability: {
		Focus: "Vulnerability Management",
		Requirements: []string{
			"Ruang lingkup dan metode pemindaian",
			"Daftar kerentanan beserta tingkat keparahan",
			"Analisis akar masalah",
			"Rencana remediasi dan tenggat waktu",
			"Verifikasi hasil perbaikan",
		},
	},
	ModulePolicy: {
		Focus: "Policy Management",
		Requirements: []string{
			"Tujuan dan ruang lingkup kebijakan",
			"Definisi peran dan tanggung jawab",
			"Pernyataan kebijakan dan prinsip",
			"Prosedur penegakan dan sanksi",
			"Jadwal peninjauan dan pembaruan",
		},
	},
	ModuleControl: {
		Focus: "Control Implementation",
		Requirements: []string{
			"Deskripsi kontrol dan referensi standar",
			"Tujuan pengendalian yang dicapai",
			"Prosedur implementasi kontrol",
			"Bukti operasional kontrol",
			"Penilaian efektivitas kontrol",
		},
	},
	ModuleGap: {
		Focus: "Gap Assessment",
		Requirements: []string{
			"Baseline standar yang diacu",
			"Kondisi saat ini per area kontrol",
			"Identifikasi kesenjangan",
			"Prioritas dan rekomendasi penutupan gap",
			"Rencana tindak lanjut",
		},
	},
	ModuleAudit: {
		Focus: "Audit Management",
		Requirements: []string{
			"Ruang lingkup dan kriteria audit",
			"Metodologi dan rencana audit",
			"Temuan audit beserta bukti",
			"Klasifikasi temuan dan rekomendasi",
			"Rencana tindakan korektif",
			"Status tindak lanjut temuan",
		},
	},
	ModuleEvidence: {
		Focus: "Evidence Management",
		Requirements: []string{
			"Identitas dan sumber bukti",
			"Keterkaitan bukti dengan kontrol atau temuan",
			"Periode berlaku bukti",
			"Penanggung jawab pengumpulan bukti",
		},
	},
	ModuleCompliance: {
		Focus: "Compliance Monitoring",
		Requirements: []string{
			"Daftar kewajiban kepatuhan yang dipantau",
			"Status kepatuhan per kewajiban",
			"Temuan ketidakpatuhan",
			"Rencana perbaikan kepatuhan",
			"Pelaporan kepada manajemen",
		},
	},
	ModuleObligation: {
		Focus: "Regulatory Obligation Tracking",
		Requirements: []string{
			"Sumber regulasi dan pasal terkait",
			"Interpretasi kewajiban bagi organisasi",
			"Pemilik kewajiban",
			"Tenggat pemenuhan kewajiban",
			"Bukti pemenuhan",
		},
	},
	ModuleDataInventory: {
		Focus: "Data Inventory & Mapping",
		Requirements: []string{
			"Daftar aset data dan lokasi penyimpanan",
			"Klasifikasi sensitivitas data",
			"Alur data antar sistem dan pihak ketiga",
			"Dasar hukum pemrosesan per aset",
			"Masa retensi per kategori data",
		},
	},
}

// Requirements returns the requirement profile for a module type with its
// regulation list attached from the regulation table. Unknown module types
// resolve to the policy profile: a permissive default, not an error.
func Requirements(m ModuleType) RequirementProfile {
	profile, ok := requirementProfiles[m]
	if !ok {
		m = ModulePolicy
		profile = requirementProfiles[m]
	}
	out := RequirementProfile{
		Focus:        profile.Focus,
		Requirements: make([]string, len(profile.Requirements)),
		Regulations:  Regulations(m),
	}
	copy(out.Requirements, profile.Requirements)
	return out
}
