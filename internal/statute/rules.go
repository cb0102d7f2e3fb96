package statute

// BuiltinRules returns the production per-state rule data. States and
// territories with no statutory preliminary-notice requirement have no
// entry; lookups for them report not-found.
//
// Deadlines are calendar days counted from first furnishing of labor or
// materials. Document text is literal and rendered verbatim; only the
// project-fields block in templates carries {{placeholder}} tokens.
func BuiltinRules() []Rule {
	return []Rule{
		{
			StateName:             "Alabama",
			DeadlineDays:          30,
			CertifiedMailRequired: true,
			Title:                 "NOTICE TO OWNER",
			Subtitle:              "Preliminary Notice Under Alabama Lien Law",
			WarningText:           "This notice is required to preserve lien rights. Failure to serve it within the statutory period may result in loss of the right to claim a lien.",
			LegalNotice:           "Pursuant to Ala. Code § 35-11-218, notice is hereby given that the undersigned has furnished or will furnish labor, materials, or services for the improvement of the property described below and may claim a lien against the property if not paid.",
			AdditionalClauses: []string{
				"This notice does not reflect a dispute or a claim of default; it is a statutory step to preserve rights.",
				"Retain this notice with your project records.",
			},
			SignatureRequirements: "Signature of claimant or authorized agent",
		},
		{
			StateName:             "Alaska",
			DeadlineDays:          15,
			CertifiedMailRequired: true,
			Title:                 "NOTICE OF RIGHT TO LIEN",
			Subtitle:              "Preliminary Notice Under Alaska Lien Law",
			WarningText:           "WARNING: Persons furnishing labor or materials to your property may have lien rights even if you pay your contractor in full.",
			LegalNotice:           "Pursuant to AS 34.35.064, the undersigned gives notice of the right to claim a lien against the property described below for labor, materials, services, or equipment furnished for its improvement.",
			AdditionalClauses: []string{
				"An owner who receives this notice may demand information about the claimant's contract and furnishing dates.",
			},
			SignatureRequirements: "Signature of claimant or authorized agent",
		},
		{
			StateName:             "Arizona",
			DeadlineDays:          20,
			CertifiedMailRequired: true,
			Title:                 "ARIZONA PRELIMINARY TWENTY DAY NOTICE",
			Subtitle:              "In Accordance With A.R.S. § 33-992.01",
			WarningText:           "IN ACCORDANCE WITH ARIZONA REVISED STATUTES, THIS IS NOT A LIEN AND THIS IS NOT A REFLECTION ON THE INTEGRITY OF ANY CONTRACTOR OR SUBCONTRACTOR.",
			LegalNotice:           "You are hereby notified that the undersigned has furnished or will furnish labor, professional services, materials, machinery, fixtures, or tools of the following general description for the improvement of the property described below. Arizona law requires this notice within twenty days of first furnishing as a condition of lien rights.",
			AdditionalClauses: []string{
				"An estimate of the total price of the labor, services, or materials is stated in the project fields below.",
				"Service by first-class mail with a certificate of mailing, registered mail, or certified mail satisfies the statutory delivery requirement.",
			},
			SignatureRequirements: "Signature of claimant or authorized agent",
		},
		{
			StateName:             "Arkansas",
			DeadlineDays:          75,
			CertifiedMailRequired: true,
			Title:                 "NOTICE TO OWNER AND CONTRACTOR",
			Subtitle:              "Preliminary Notice Under Arkansas Lien Law",
			WarningText:           "FAILURE TO SERVE THIS NOTICE WITHIN SEVENTY-FIVE DAYS OF FURNISHING MAY DEFEAT THE RIGHT TO A MATERIALMAN'S LIEN.",
			LegalNotice:           "Pursuant to Ark. Code Ann. § 18-44-114, the undersigned notifies the owner and the general contractor that labor or materials have been or will be supplied for the improvement of the property described below.",
			AdditionalClauses: []string{
				"This notice covers all labor and materials supplied from the first date of furnishing stated below.",
			},
			SignatureRequirements: "Signature of claimant or authorized agent",
		},
		{
			StateName:             "California",
			DeadlineDays:          20,
			CertifiedMailRequired: true,
			Title:                 "CALIFORNIA PRELIMINARY NOTICE",
			Subtitle:              "In Accordance With California Civil Code Sections 8100-8118, 8200-8216",
			WarningText:           "NOTICE TO PROPERTY OWNER: EVEN THOUGH YOU HAVE PAID YOUR CONTRACTOR IN FULL, if the person or firm that has given you this notice is not paid in full for labor, service, equipment, or material provided or to be provided to your construction project, a lien may be placed on your property.",
			LegalNotice:           "You are hereby notified that the undersigned has furnished or will furnish labor, service, equipment, or material of the following general description for the building, structure, or other work of improvement located at the project address stated below. This notice is given within twenty days of first furnishing as required for full protection of lien rights.",
			AdditionalClauses: []string{
				"Foreclosure of a mechanics lien may lead to loss of all or part of your property, even though you have paid your contractor in full.",
				"You may wish to protect yourself against this consequence by requiring your contractor to furnish a signed release by the person or firm giving you this notice before making payment to your contractor.",
				"An estimate of the total price of the labor, services, equipment, or materials furnished or to be furnished is stated in the project fields below.",
			},
			SignatureRequirements: "Signature of claimant or authorized agent",
		},
		{
			StateName:             "Colorado",
			DeadlineDays:          60,
			CertifiedMailRequired: false,
			Title:                 "NOTICE OF INTENT TO PRESERVE LIEN RIGHTS",
			Subtitle:              "Preliminary Notice Under Colorado Lien Law",
			WarningText:           "This notice preserves the right to later record a lien statement. It is not itself a lien and is not a reflection on any contractor's credit.",
			LegalNotice:           "Pursuant to C.R.S. § 38-22-101 et seq., the undersigned gives notice of having furnished or intending to furnish labor, materials, or equipment for the improvement of the property described below.",
			SignatureRequirements: "Signature of claimant or authorized agent",
		},
		{
			StateName:             "Connecticut",
			DeadlineDays:          90,
			CertifiedMailRequired: true,
			Title:                 "PRELIMINARY NOTICE",
			Subtitle:              "Notice of Furnishing Under Connecticut Lien Law",
			WarningText:           "Persons furnishing labor or materials for the improvement of this property may have lien rights against it if unpaid.",
			LegalNotice:           "Pursuant to Conn. Gen. Stat. § 49-33 et seq., notice is hereby given that the undersigned has furnished or will furnish materials or services for the improvement of the property described below.",
			SignatureRequirements: "Signature of claimant or authorized agent",
		},
		{
			StateName:             "Florida",
			DeadlineDays:          45,
			CertifiedMailRequired: true,
			Title:                 "NOTICE TO OWNER",
			Subtitle:              "In Accordance With Section 713.06, Florida Statutes",
			WarningText:           "FLORIDA'S CONSTRUCTION LIEN LAW ALLOWS SOME UNPAID CONTRACTORS, SUBCONTRACTORS, AND MATERIAL SUPPLIERS TO FILE LIENS AGAINST YOUR PROPERTY EVEN IF YOU HAVE MADE PAYMENT IN FULL.",
			LegalNotice:           "The undersigned hereby informs you that the undersigned has furnished or is furnishing services or materials for the improvement of the real property identified below, under an order given by the contracting party stated in the project fields. This notice must be served before commencing, or not later than forty-five days after commencing, to furnish services or materials.",
			AdditionalClauses: []string{
				"Under Florida law, your failure to make sure that the undersigned is paid may result in a lien against your property and your paying twice.",
				"To avoid a lien and paying twice, you must obtain a written release from the undersigned every time you pay your contractor.",
			},
			SignatureRequirements: "Signature of claimant or authorized agent",
		},
		{
			StateName:             "Georgia",
			DeadlineDays:          30,
			CertifiedMailRequired: true,
			Title:                 "PRELIMINARY NOTICE OF LIEN RIGHTS",
			Subtitle:              "In Accordance With O.C.G.A. § 44-14-361.3",
			WarningText:           "The failure to give this notice where a Notice of Commencement has been filed may result in the loss of lien rights.",
			LegalNotice:           "To the owner and contractor named below: the undersigned gives notice of furnishing labor, services, or materials for the improvement of the property described below, and of the right to claim a lien for amounts remaining unpaid.",
			SignatureRequirements: "Signature of claimant or authorized agent",
		},
		{
			StateName:             "Idaho",
			DeadlineDays:          60,
			CertifiedMailRequired: false,
			Title:                 "PRELIMINARY NOTICE",
			Subtitle:              "Notice of Right to Claim a Lien Under Idaho Law",
			WarningText:           "Persons furnishing labor or materials to your property may have lien rights even if you pay your contractor in full.",
			LegalNotice:           "Pursuant to Idaho Code § 45-501 et seq., the undersigned gives notice of having furnished or intending to furnish labor or materials for the improvement of the property described below.",
			SignatureRequirements: "Signature of claimant or authorized agent",
		},
		{
			StateName:             "Illinois",
			DeadlineDays:          60,
			CertifiedMailRequired: true,
			Title:                 "NOTICE TO OWNER",
			Subtitle:              "Subcontractor's 60-Day Notice Under the Illinois Mechanics Lien Act",
			WarningText:           "THE LAW REQUIRES THAT THE OWNER BE NOTIFIED OF PERSONS FURNISHING LABOR OR MATERIALS IN ORDER THAT THE OWNER MAY RETAIN SUFFICIENT FUNDS TO PAY THEM.",
			LegalNotice:           "Pursuant to 770 ILCS 60/5 and 60/24, the undersigned notifies you of having been employed to furnish labor or materials for the improvement of the property described below, and of the right to claim a lien for amounts unpaid.",
			AdditionalClauses: []string{
				"On single-family owner-occupied residences this notice must be served within sixty days of first furnishing.",
			},
			SignatureRequirements: "Signature of claimant or authorized agent",
		},
		{
			StateName:             "Indiana",
			DeadlineDays:          60,
			CertifiedMailRequired: true,
			Title:                 "PRE-LIEN NOTICE",
			Subtitle:              "Notice to Owner Under Ind. Code § 32-28-3-1",
			WarningText:           "Failure to serve this notice within the statutory period on owner-occupied residential property bars a later lien.",
			LegalNotice:           "The undersigned notifies the owner of the property described below of having furnished or intending to furnish labor or materials for its improvement, and of the intent to hold a lien for amounts remaining unpaid. On owner-occupied residential projects this notice is due within sixty days of first furnishing; thirty days for new single-family construction.",
			SignatureRequirements: "Signature of claimant or authorized agent",
		},
		{
			StateName:             "Iowa",
			DeadlineDays:          30,
			CertifiedMailRequired: false,
			Title:                 "PRELIMINARY NOTICE",
			Subtitle:              "Notice of Commencement of Work Under Iowa Code Chapter 572",
			WarningText:           "Persons or companies furnishing labor or materials for the improvement of real property may enforce a lien upon the improved property if they are not paid.",
			LegalNotice:           "Pursuant to Iowa Code § 572.13A, the undersigned posts notice to the mechanics' notice and lien registry and notifies the owner of the commencement of furnishing labor or materials for the residential construction property described below.",
			SignatureRequirements: "Signature of claimant or authorized agent",
		},
		{
			StateName:             "Louisiana",
			DeadlineDays:          30,
			CertifiedMailRequired: true,
			Title:                 "NOTICE OF LIEN RIGHTS",
			Subtitle:              "Preliminary Notice Under the Louisiana Private Works Act",
			WarningText:           "Persons furnishing labor or materials to your property may record a privilege against it if they are not paid, even if you pay your contractor in full.",
			LegalNotice:           "Pursuant to La. R.S. 9:4801 et seq., the undersigned gives notice of furnishing or intending to furnish labor, services, or materials for the improvement of the immovable property described below.",
			SignatureRequirements: "Signature of claimant or authorized agent",
		},
		{
			StateName:             "Michigan",
			DeadlineDays:          20,
			CertifiedMailRequired: true,
			Title:                 "NOTICE OF FURNISHING",
			Subtitle:              "In Accordance With the Michigan Construction Lien Act, MCL 570.1109",
			WarningText:           "A PERSON WHO PROVIDES AN IMPROVEMENT TO REAL PROPERTY AND IS NOT PAID MAY CLAIM A CONSTRUCTION LIEN AGAINST THE PROPERTY.",
			LegalNotice:           "To the designee (or owner or lessee) and general contractor: the undersigned gives notice of furnishing labor or material, or both, for the improvement of the property described below pursuant to a contract with the party identified in the project fields. This notice is due within twenty days after first furnishing.",
			SignatureRequirements: "Signature of claimant or authorized agent",
		},
		{
			StateName:             "Minnesota",
			DeadlineDays:          45,
			CertifiedMailRequired: true,
			Title:                 "PRELIMINARY NOTICE",
			Subtitle:              "Subcontractor's Notice Under Minn. Stat. § 514.011",
			WarningText:           "ANY PERSON OR COMPANY SUPPLYING LABOR OR MATERIALS FOR THIS IMPROVEMENT TO YOUR PROPERTY MAY FILE A LIEN AGAINST YOUR PROPERTY IF THAT PERSON OR COMPANY IS NOT PAID FOR THE CONTRIBUTIONS.",
			LegalNotice:           "This notice is to advise you of your rights under Minnesota law in connection with the improvement to your property. The undersigned has furnished or will furnish labor or materials for this improvement and gives this notice within forty-five days of first furnishing.",
			AdditionalClauses: []string{
				"Under Minnesota law, you have the right to pay persons who supplied labor or materials for this improvement directly and deduct this amount from our contract price, or withhold the amounts due them from us until one hundred twenty days after completion of the improvement unless we give you a lien waiver signed by persons who supplied any labor or material for the improvement and who gave you timely notice.",
			},
			SignatureRequirements: "Signature of claimant or authorized agent",
		},
		{
			StateName:             "Missouri",
			DeadlineDays:          10,
			CertifiedMailRequired: false,
			Title:                 "NOTICE TO OWNER",
			Subtitle:              "Consent-of-Owner Notice Under Mo. Rev. Stat. § 429.012",
			WarningText:           "FAILURE OF THIS CONTRACTOR TO PAY THOSE PERSONS SUPPLYING MATERIAL OR SERVICES TO COMPLETE THIS CONTRACT CAN RESULT IN THE FILING OF A MECHANIC'S LIEN ON THE PROPERTY WHICH IS THE SUBJECT OF THIS CONTRACT.",
			LegalNotice:           "The undersigned gives the owner this written notice, as a condition precedent to the creation of a mechanic's lien, that labor, materials, or services have been or will be furnished for the improvement of the property described below.",
			SignatureRequirements: "Signature of claimant or authorized agent",
		},
		{
			StateName:             "Montana",
			DeadlineDays:          20,
			CertifiedMailRequired: true,
			Title:                 "NOTICE OF RIGHT TO CLAIM LIEN",
			Subtitle:              "In Accordance With Mont. Code Ann. § 71-3-531",
			WarningText:           "WARNING: READ THIS NOTICE. PERSONS OR COMPANIES FURNISHING LABOR, SERVICES, OR MATERIALS FOR THE IMPROVEMENT OF YOUR PROPERTY MAY CLAIM A LIEN IF THEY ARE NOT PAID.",
			LegalNotice:           "The undersigned gives notice of the right to claim a construction lien against the property described below for services or materials furnished at the request of the contracting party stated in the project fields. This notice must be delivered within twenty days of first furnishing.",
			SignatureRequirements: "Signature of claimant or authorized agent",
		},
		{
			StateName:             "Nevada",
			DeadlineDays:          31,
			CertifiedMailRequired: true,
			Title:                 "NOTICE OF RIGHT TO LIEN",
			Subtitle:              "In Accordance With NRS 108.245",
			WarningText:           "TO THE OWNER OF THE PROPERTY: This notice is not a lien against your property. Nevada law requires that this notice be given to preserve lien rights.",
			LegalNotice:           "The undersigned notifies you that the undersigned has supplied or will supply materials or equipment, or has performed or will perform work or services, for the improvement of the property described below. If the undersigned is not paid, a lien may be recorded against the property.",
			AdditionalClauses: []string{
				"This notice covers materials, equipment, work, or services supplied within thirty-one days before the date this notice is given, and all such contributions supplied after this notice.",
			},
			SignatureRequirements: "Signature of claimant or authorized agent",
		},
		{
			StateName:             "New Mexico",
			DeadlineDays:          60,
			CertifiedMailRequired: true,
			Title:                 "PRELIMINARY NOTICE",
			Subtitle:              "Notice of Right to Claim a Lien Under NMSA § 48-2-2.1",
			WarningText:           "Persons furnishing labor or materials to your property may have lien rights even if you pay your contractor in full.",
			LegalNotice:           "The undersigned gives notice of the right to claim a mechanic's or materialman's lien for labor, materials, or equipment furnished for the improvement of the property described below. On projects over the statutory threshold this notice is due within sixty days of first furnishing.",
			SignatureRequirements: "Signature of claimant or authorized agent",
		},
		{
			StateName:             "Ohio",
			DeadlineDays:          21,
			CertifiedMailRequired: true,
			NotaryRequired:        true,
			Title:                 "NOTICE OF FURNISHING",
			Subtitle:              "In Accordance With Ohio Revised Code § 1311.05",
			WarningText:           "FAILURE TO SERVE A NOTICE OF FURNISHING WITHIN TWENTY-ONE DAYS AFTER FIRST FURNISHING LIMITS LIEN RIGHTS TO AMOUNTS OWED FOR LABOR OR MATERIALS FURNISHED WITHIN THE TWENTY-ONE DAYS PRECEDING SERVICE.",
			LegalNotice:           "To the owner, part owner, or lessee, and to the original contractor: the undersigned hereby serves notice of furnishing labor, work, or materials for the improvement of the property described below, performed or furnished under contract with the party stated in the project fields, in connection with the Notice of Commencement recorded for this project.",
			AdditionalClauses: []string{
				"Ohio law requires this notice to be sworn before a notary public; the signature block below must be notarized.",
			},
			SignatureRequirements: "Signature of claimant or authorized agent, sworn and subscribed before a notary public",
		},
		{
			StateName:             "Oklahoma",
			DeadlineDays:          75,
			CertifiedMailRequired: true,
			Title:                 "PRE-LIEN NOTICE",
			Subtitle:              "In Accordance With 42 Okla. Stat. § 142.6",
			WarningText:           "Failure to send this notice within seventy-five days after the last furnishing bars a lien claim in excess of the statutory threshold.",
			LegalNotice:           "The undersigned notifies the original contractor and the owner of the property described below of having furnished labor, services, equipment, or materials for its improvement, and of the right to claim a lien for amounts remaining unpaid.",
			SignatureRequirements: "Signature of claimant or authorized agent",
		},
		{
			StateName:             "Oregon",
			DeadlineDays:          8,
			CertifiedMailRequired: true,
			Title:                 "NOTICE OF RIGHT TO A LIEN",
			Subtitle:              "In Accordance With ORS 87.021",
			WarningText:           "WARNING: READ THIS NOTICE. PROTECT YOURSELF FROM PAYING ANY CONTRACTOR OR SUPPLIER TWICE FOR THE SAME SERVICE.",
			LegalNotice:           "This is to inform you that the undersigned has begun to provide labor, materials, equipment, or services ordered by the contracting party stated in the project fields for improvements to the property described below. Oregon law requires this notice within eight days of first delivery, Saturdays, Sundays, and holidays excluded, to preserve full lien rights.",
			AdditionalClauses: []string{
				"Even if you have paid your contractor in full, if the undersigned is not paid, your property may be liened.",
				"This notice has been sent to you by registered or certified mail as required by law.",
			},
			SignatureRequirements: "Signature of claimant or authorized agent",
		},
		{
			StateName:             "Tennessee",
			DeadlineDays:          90,
			CertifiedMailRequired: true,
			Title:                 "NOTICE OF NONPAYMENT",
			Subtitle:              "Preliminary Notice Under Tenn. Code Ann. § 66-11-145",
			WarningText:           "Failure to serve this notice within ninety days of each month in which labor or materials were furnished and unpaid forfeits the remedies provided by Tennessee lien law for that month.",
			LegalNotice:           "The undersigned notifies the owner and the prime contractor of nonpayment for labor or materials provided for the improvement of the property described below, and of the intent to preserve all lien rights for the amounts stated in the project fields.",
			SignatureRequirements: "Signature of claimant or authorized agent",
		},
		{
			StateName:             "Texas",
			DeadlineDays:          60,
			CertifiedMailRequired: true,
			Title:                 "NOTICE OF CLAIM FOR UNPAID LABOR OR MATERIALS",
			Subtitle:              "Derivative Claimant Notice Under Texas Property Code Chapter 53",
			WarningText:           "THIS IS A NOTICE OF AN UNPAID BALANCE. IF THE CLAIM REMAINS UNPAID, THE OWNER MAY BE PERSONALLY LIABLE AND THE OWNER'S PROPERTY MAY BE SUBJECTED TO A LIEN UNLESS SUFFICIENT FUNDS ARE WITHHELD FROM PAYMENTS TO THE ORIGINAL CONTRACTOR.",
			LegalNotice:           "The undersigned notifies the owner and the original contractor of unpaid amounts owed for labor performed or materials furnished for the improvement of the property described below. Texas law requires notice no later than the fifteenth day of the second month (residential) or third month (commercial) following each month of furnishing; the sixty-day figure stated here is the conservative residential reference used for reminder scheduling.",
			SignatureRequirements: "Signature of claimant or authorized agent",
		},
		{
			StateName:             "Utah",
			DeadlineDays:          20,
			CertifiedMailRequired: false,
			Title:                 "PRELIMINARY NOTICE",
			Subtitle:              "Filed With the Utah State Construction Registry Under Utah Code § 38-1a-501",
			WarningText:           "Failure to file a preliminary notice within twenty days after first furnishing precludes enforcement of a lien for work performed more than five days before a late filing.",
			LegalNotice:           "The undersigned gives notice, through the State Construction Registry, of furnishing labor, service, equipment, or material for the improvement of the property described below, and of the right to claim a preconstruction or construction lien for amounts remaining unpaid.",
			AdditionalClauses: []string{
				"Utah accepts registry filing; mailing is not required for valid service.",
			},
			SignatureRequirements: "Signature of claimant or authorized agent",
		},
		{
			StateName:             "Washington",
			DeadlineDays:          60,
			CertifiedMailRequired: true,
			Title:                 "NOTICE TO OWNER",
			Subtitle:              "Notice of Right to Claim a Lien Under RCW 60.04.031",
			WarningText:           "IMPORTANT: READ BOTH SIDES OF THIS NOTICE CAREFULLY. PROTECT YOURSELF FROM PAYING TWICE.",
			LegalNotice:           "At the request of the contracting party stated in the project fields, the undersigned has begun to furnish professional services, materials, or equipment for the improvement of the property described below. Washington law requires this notice within sixty days of first furnishing to preserve lien rights against the owner.",
			AdditionalClauses: []string{
				"Within ten days of receiving this notice you may request a copy of the undersigned's contract or purchase order.",
			},
			SignatureRequirements: "Signature of claimant or authorized agent",
		},
		{
			StateName:             "Wisconsin",
			DeadlineDays:          60,
			CertifiedMailRequired: true,
			Title:                 "PRELIMINARY NOTICE",
			Subtitle:              "Identification Notice Under Wis. Stat. § 779.02",
			WarningText:           "AS A PART OF YOUR CONSTRUCTION CONTRACT, YOUR PRIME CONTRACTOR OR CLAIMANT HEREBY NOTIFIES YOU THAT PERSONS OR COMPANIES FURNISHING, PROCURING OR PROVIDING LABOR, SERVICES, MATERIALS, PLANS, OR SPECIFICATIONS FOR THE CONSTRUCTION ON YOUR LAND MAY HAVE LIEN RIGHTS ON YOUR LAND AND BUILDINGS IF NOT PAID.",
			LegalNotice:           "The undersigned, having furnished or intending to furnish labor, services, materials, plans, or specifications for the improvement of the property described below, gives this identification notice within sixty days of first furnishing to preserve lien rights.",
			SignatureRequirements: "Signature of claimant or authorized agent",
		},
		{
			StateName:             "Wyoming",
			DeadlineDays:          30,
			CertifiedMailRequired: true,
			Title:                 "PRELIMINARY NOTICE OF RIGHT TO LIEN",
			Subtitle:              "In Accordance With Wyo. Stat. § 29-2-112",
			WarningText:           "Persons furnishing labor or materials to your property may claim a lien against it if they are not paid, even if you have paid your contractor in full.",
			LegalNotice:           "The undersigned gives written notice to the record owner of the property described below of the right to assert a lien for labor or materials furnished for its improvement, as required within thirty days of first providing work.",
			SignatureRequirements: "Signature of claimant or authorized agent",
		},
	}
}
