package seed

const (
	FactionJoe   = "G.I. Joe"
	FactionCobra = "Cobra"
	toyLineARAH  = "A Real American Hero"
	wiki         = "https://gijoe.fandom.com/wiki/"
)

// Default returns the built-in dataset of characters, vehicles, weapons,
// locations and their relations.
func Default() Dataset {
	return Dataset{
		Characters:       defaultCharacters(),
		Vehicles:         defaultVehicles(),
		Weapons:          defaultWeapons(),
		Locations:        defaultLocations(),
		VehicleRelations: []Relation{
			{Character: "Duke", Other: "VAMP", Type: "Primary Driver"},
			{Character: "Cobra Commander", Other: "HISS Tank", Type: "Primary Driver"},
			{Character: "Scarlett", Other: "VAMP", Type: "Secondary Driver"},
		},
		WeaponRelations: []Relation{
			{Character: "Duke", Other: "M-16 Rifle", Type: "Primary Weapon"},
			{Character: "Scarlett", Other: "Crossbow", Type: "Signature Weapon"},
			{Character: "Snake Eyes", Other: "Katana", Type: "Signature Weapon"},
			{Character: "Storm Shadow", Other: "Katana", Type: "Primary Weapon"},
		},
	}
}

func defaultCharacters() []Character {
	return []Character{
		{
			Name: "Duke", RealName: "Conrad S. Hauser", CodeName: "Duke", Faction: FactionJoe,
			Rank: "First Sergeant", Specialty: "Field Commander", Birthplace: "St. Louis, Missouri",
			Bio:             "Duke is the field commander of the G.I. Joe team, known for his tactical expertise, leadership skills, and unwavering dedication to the mission. A natural born leader with extensive military training.",
			FirstAppearance: "1983", VoiceActor: "Michael Bell", WikiURL: wiki + "Duke_(RAH)", Status: "Active",
		},
		{
			Name: "Snake Eyes", RealName: "Classified", CodeName: "Snake Eyes", Faction: FactionJoe,
			Rank: "Staff Sergeant", Specialty: "Commando", Birthplace: "Classified",
			Bio:             "Silent ninja commando and one of the most popular G.I. Joe characters. Mute due to vocal cord damage, master of martial arts and edged weapons. Sworn brother to Storm Shadow.",
			FirstAppearance: "1982", VoiceActor: "None (Silent)", WikiURL: wiki + "Snake_Eyes_(RAH)", Status: "Active",
		},
		{
			Name: "Scarlett", RealName: "Shana M. O'Hara", CodeName: "Scarlett", Faction: FactionJoe,
			Rank: "E-5 Sergeant", Specialty: "Counter Intelligence", Birthplace: "Atlanta, Georgia",
			Bio:             "Expert in martial arts and crossbow marksmanship, intelligence specialist. One of the original G.I. Joe team members and often serves as second-in-command.",
			FirstAppearance: "1982", VoiceActor: "B.J. Ward", WikiURL: wiki + "Scarlett_(RAH)", Status: "Active",
		},
		{
			Name: "Roadblock", RealName: "Marvin F. Hinton", CodeName: "Roadblock", Faction: FactionJoe,
			Rank: "Staff Sergeant", Specialty: "Heavy Machine Gunner", Birthplace: "Biloxi, Mississippi",
			Bio:             "Heavy weapons specialist known for his strength, cooking skills, and ability to speak in rhymes. Expert with heavy machine guns and anti-tank weapons.",
			FirstAppearance: "1984", VoiceActor: "Kene Holliday", WikiURL: wiki + "Roadblock_(RAH)", Status: "Active",
		},
		{
			Name: "Flint", RealName: "Dashiell R. Faireborn", CodeName: "Flint", Faction: FactionJoe,
			Rank: "Warrant Officer", Specialty: "Infantry", Birthplace: "Wichita, Kansas",
			Bio:             "Infantry specialist and tactician, often partners with Lady Jaye. Expert in small unit tactics and survival training.",
			FirstAppearance: "1985", VoiceActor: "Bill Ratner", WikiURL: wiki + "Flint_(RAH)", Status: "Active",
		},
		{
			Name: "Lady Jaye", RealName: "Alison R. Hart-Burnett", CodeName: "Lady Jaye", Faction: FactionJoe,
			Rank: "Captain", Specialty: "Covert Operations", Birthplace: "Martha's Vineyard, Massachusetts",
			Bio:             "Intelligence officer specializing in covert operations and infiltration. Expert in multiple languages and disguise techniques.",
			FirstAppearance: "1985", VoiceActor: "Mary McDonald-Lewis", WikiURL: wiki + "Lady_Jaye_(RAH)", Status: "Active",
		},
		{
			Name: "Shipwreck", RealName: "Hector X. Delgado", CodeName: "Shipwreck", Faction: FactionJoe,
			Rank: "Petty Officer First Class", Specialty: "Naval Intelligence", Birthplace: "Chula Vista, California",
			Bio:             "Navy specialist and seaman, known for his sailor's mouth and his pet parrot Polly. Expert in naval operations and underwater combat.",
			FirstAppearance: "1985", VoiceActor: "Neil Ross", WikiURL: wiki + "Shipwreck_(RAH)", Status: "Active",
		},
		{
			Name: "Cobra Commander", RealName: "Classified", CodeName: "Cobra Commander", Faction: FactionCobra,
			Rank: "Supreme Commander", Specialty: "Terrorist Leader", Birthplace: "Unknown",
			Bio:             "The ruthless and megalomaniacal leader of the terrorist organization Cobra, bent on world domination. Known for his distinctive helmet and serpentine hiss.",
			FirstAppearance: "1982", VoiceActor: "Chris Latta", WikiURL: wiki + "Cobra_Commander_(RAH)", Status: "Active",
		},
		{
			Name: "Destro", RealName: "James McCullen Destro XXIV", CodeName: "Destro", Faction: FactionCobra,
			Rank: "Weapons Supplier", Specialty: "Arms Dealer", Birthplace: "Callander, Scotland",
			Bio:             "Leader of M.A.R.S. Industries and Cobra's primary weapons supplier. Wears an ancestral metal mask and maintains a code of honor despite his villainous nature.",
			FirstAppearance: "1983", VoiceActor: "Arthur Burghardt", WikiURL: wiki + "Destro_(RAH)", Status: "Active",
		},
		{
			Name: "Baroness", RealName: "Anastasia DeCobray", CodeName: "Baroness", Faction: FactionCobra,
			Rank: "Intelligence Officer", Specialty: "Espionage", Birthplace: "Transylvania, Romania",
			Bio:             "Cobra intelligence officer and Destro's romantic interest. Expert in espionage, sabotage, and psychological warfare. Known for her distinctive glasses and leather outfit.",
			FirstAppearance: "1984", VoiceActor: "Morgan Lofting", WikiURL: wiki + "Baroness_(RAH)", Status: "Active",
		},
		{
			Name: "Storm Shadow", RealName: "Thomas S. Arashikage", CodeName: "Storm Shadow", Faction: FactionCobra,
			Rank: "Ninja Assassin", Specialty: "Assassin", Birthplace: "Tokyo, Japan",
			Bio:             "Cobra ninja assassin and rival to Snake Eyes, though they were once sworn brothers. Master of martial arts and traditional ninja weapons.",
			FirstAppearance: "1984", VoiceActor: "Keone Young", WikiURL: wiki + "Storm_Shadow_(RAH)", Status: "Active",
		},
		{
			Name: "Zartan", RealName: "Unknown", CodeName: "Zartan", Faction: FactionCobra,
			Rank: "Master of Disguise", Specialty: "Assassin/Saboteur", Birthplace: "Unknown",
			Bio:             "Master of disguise and leader of the Dreadnoks. Ability to change skin color like a chameleon and expert in ventriloquism and mimicry.",
			FirstAppearance: "1984", VoiceActor: "Zack Hoffman", WikiURL: wiki + "Zartan_(RAH)", Status: "Active",
		},
		{
			Name: "Dr. Mindbender", RealName: "Dr. Sidney Biggles-Jones", CodeName: "Dr. Mindbender", Faction: FactionCobra,
			Rank: "Master of Mind Control", Specialty: "Brainwashing", Birthplace: "Australian Outback",
			Bio:             "Cobra's chief scientist and expert in brainwashing and mind control. Former orthodontist turned evil genius.",
			FirstAppearance: "1986", VoiceActor: "Frank Welker", WikiURL: wiki + "Dr._Mindbender_(RAH)", Status: "Active",
		},
		{
			Name: "Major Bludd", RealName: "Sebastian Bludd", CodeName: "Major Bludd", Faction: FactionCobra,
			Rank: "Major", Specialty: "Mercenary", Birthplace: "Sydney, Australia",
			Bio:             "Mercenary soldier and poet who works for Cobra. Expert in guerrilla warfare and known for his military expertise and distinctive accent.",
			FirstAppearance: "1983", VoiceActor: "Bill Ratner", WikiURL: wiki + "Major_Bludd_(RAH)", Status: "Active",
		},
	}
}

func defaultVehicles() []Vehicle {
	return []Vehicle{
		{
			Name: "VAMP", YearIntroduced: 1982, Faction: FactionJoe, Category: "Land Vehicle", VehicleType: "Attack Vehicle",
			Description: "Versatile Attack Multi-Purpose vehicle, fast reconnaissance and assault vehicle.",
			PilotDriver: "Clutch", CrewCapacity: 2,
			Weapons:        "7.62mm machine gun, optional missile pod",
			Features:       "Roll cage, all-terrain capability, speed 65 mph",
			Specifications: "Length: 11 feet, Weight: 2.5 tons",
			WikiURL:        wiki + "VAMP", ToyLine: toyLineARAH,
		},
		{
			Name: "Wolverine", YearIntroduced: 1983, Faction: FactionJoe, Category: "Land Vehicle", VehicleType: "Armored Fighting Vehicle",
			Description: "Armored missile tank with twin missile launchers.",
			PilotDriver: "Cover Girl", CrewCapacity: 1,
			Weapons:  "Twin missile launchers, machine gun",
			Features: "Heavy armor, tracked mobility",
			WikiURL:  wiki + "Wolverine", ToyLine: toyLineARAH,
		},
		{
			Name: "Mauler M.B.T.", YearIntroduced: 1985, Faction: FactionJoe, Category: "Land Vehicle", VehicleType: "Main Battle Tank",
			Description: "Main battle tank with rotating turret and heavy armor.",
			PilotDriver: "Heavy Metal", CrewCapacity: 2,
			Weapons:  "120mm main gun, coaxial machine gun",
			Features: "Composite armor, night vision",
			WikiURL:  wiki + "Mauler_M.B.T.", ToyLine: toyLineARAH,
		},
		{
			Name: "Skystriker", YearIntroduced: 1983, Faction: FactionJoe, Category: "Aircraft", VehicleType: "Fighter Jet",
			Description: "XP-14F fighter jet based on the F-14 Tomcat, primary air superiority fighter.",
			PilotDriver: "Ace", CrewCapacity: 1,
			Weapons:        "Air-to-air missiles, 20mm cannon, bombs",
			Features:       "Variable-sweep wings, afterburners, ejection seat",
			Specifications: "Max speed: Mach 2.3, Range: 2000 miles",
			WikiURL:        wiki + "Skystriker", ToyLine: toyLineARAH,
		},
		{
			Name: "Dragonfly", YearIntroduced: 1983, Faction: FactionJoe, Category: "Aircraft", VehicleType: "Helicopter",
			Description: "XH-1 helicopter gunship for close air support and transport.",
			PilotDriver: "Wild Bill", CrewCapacity: 3,
			Weapons:  "Chain gun, rocket pods, door guns",
			Features: "Night vision, rescue winch",
			WikiURL:  wiki + "Dragonfly", ToyLine: toyLineARAH,
		},
		{
			Name: "HISS Tank", YearIntroduced: 1983, Faction: FactionCobra, Category: "Land Vehicle", VehicleType: "Tank",
			Description: "High Speed Sentry tank, Cobra's primary battle tank with distinctive design.",
			PilotDriver: "HISS Driver", CrewCapacity: 1,
			Weapons:        "Twin laser cannons, machine guns",
			Features:       "High speed, stealth coating, advanced targeting",
			Specifications: "Top speed: 80 mph, Armor: Composite",
			WikiURL:        wiki + "HISS_Tank", ToyLine: toyLineARAH,
		},
		{
			Name: "Rattler", YearIntroduced: 1984, Faction: FactionCobra, Category: "Aircraft", VehicleType: "Attack Aircraft",
			Description: "Ground attack aircraft designed for close air support missions.",
			PilotDriver: "Wild Weasel", CrewCapacity: 1,
			Weapons:  "Missiles, bombs, nose cannon",
			Features: "VTOL capability, armored cockpit",
			WikiURL:  wiki + "Rattler", ToyLine: toyLineARAH,
		},
		{
			Name: "FANG", YearIntroduced: 1983, Faction: FactionCobra, Category: "Aircraft", VehicleType: "Helicopter",
			Description: "Fully Armed Negator Gyrocopter, one-man attack helicopter.",
			PilotDriver: "Cobra Pilot", CrewCapacity: 1,
			Weapons:  "Twin machine guns, missiles",
			Features: "Gyrocopter design, high maneuverability",
			WikiURL:  wiki + "FANG", ToyLine: toyLineARAH,
		},
		{
			Name: "Water Moccasin", YearIntroduced: 1984, Faction: FactionCobra, Category: "Naval", VehicleType: "Swamp Boat",
			Description: "Swamp patrol boat optimized for operations in wetland environments.",
			PilotDriver: "Copperhead", CrewCapacity: 2,
			Weapons:  "Twin machine guns, depth charges",
			Features: "Shallow draft, silent running mode",
			WikiURL:  wiki + "Water_Moccasin", ToyLine: toyLineARAH,
		},
		{
			Name: "Stinger", YearIntroduced: 1984, Faction: FactionCobra, Category: "Land Vehicle", VehicleType: "Jeep",
			Description: "Fast attack vehicle for reconnaissance and hit-and-run tactics.",
			PilotDriver: "Cobra Officer", CrewCapacity: 2,
			Weapons:  "Machine gun, missile launcher",
			Features: "High speed, off-road capability",
			WikiURL:  wiki + "Stinger", ToyLine: toyLineARAH,
		},
		{
			Name: "USS Flagg", YearIntroduced: 1985, Faction: FactionJoe, Category: "Naval", VehicleType: "Aircraft Carrier",
			Description: "Massive aircraft carrier serving as mobile command base.",
			PilotDriver: "Keel Haul", CrewCapacity: 1000,
			Weapons:        "Defensive missile systems, deck guns",
			Features:       "Flight deck, command center, hangar bay",
			Specifications: "Length: 7.5 feet (toy), Crew: 1000+",
			WikiURL:        wiki + "USS_Flagg", ToyLine: toyLineARAH,
		},
		{
			Name: "Terrordrome", YearIntroduced: 1986, Faction: FactionCobra, Category: "Land Vehicle", VehicleType: "Mobile Base",
			Description: "Cobra's massive mobile command fortress and weapons platform.",
			PilotDriver: "Cobra Commander", CrewCapacity: 50,
			Weapons:  "Multiple missile batteries, laser cannons",
			Features: "Command center, vehicle bay, communications array",
			WikiURL:  wiki + "Terrordrome", ToyLine: toyLineARAH,
		},
	}
}

func defaultWeapons() []Weapon {
	return []Weapon{
		{
			Name: "M-16 Rifle", Type: "Assault Rifle", Faction: FactionJoe,
			Description:    "Standard assault rifle used by G.I. Joe forces. Reliable and versatile weapon.",
			Specifications: "Caliber: 5.56mm, Rate of fire: 700-950 rounds/min",
			UsedBy:         "Duke, Flint, Multiple G.I. Joe members", FirstAppearance: "1982", WikiURL: wiki + "M-16",
		},
		{
			Name: "Crossbow", Type: "Ranged Weapon", Faction: FactionJoe,
			Description:    "Silent ranged weapon with explosive and standard bolts. Scarlett's signature weapon.",
			Specifications: "Draw weight: 150 lbs, Effective range: 200 yards",
			UsedBy:         "Scarlett", FirstAppearance: "1982", WikiURL: wiki + "Crossbow",
		},
		{
			Name: "Katana", Type: "Melee Weapon", Faction: "Neutral",
			Description:    "Traditional Japanese sword used by ninja operatives.",
			Specifications: "Blade length: 28 inches, Steel: High carbon",
			UsedBy:         "Snake Eyes, Storm Shadow", FirstAppearance: "1982", WikiURL: wiki + "Katana",
		},
		{
			Name: "M2 Browning", Type: "Heavy Machine Gun", Faction: FactionJoe,
			Description:    "Heavy machine gun used by Roadblock and mounted on vehicles.",
			Specifications: "Caliber: .50 BMG, Rate of fire: 450-575 rounds/min",
			UsedBy:         "Roadblock, Heavy Metal", FirstAppearance: "1984", WikiURL: wiki + "M2_Browning",
		},
		{
			Name: "Javelin Missiles", Type: "Missile System", Faction: FactionJoe,
			Description:    "Shoulder-fired anti-tank missiles used by G.I. Joe forces.",
			Specifications: "Range: 4.75 km, Warhead: HEAT",
			UsedBy:         "Bazooka, Multiple specialists", FirstAppearance: "1985", WikiURL: wiki + "Javelin_Missile",
		},
		{
			Name: "Laser Rifle", Type: "Energy Weapon", Faction: FactionCobra,
			Description:    "High-tech energy weapon used by Cobra forces.",
			Specifications: "Power source: Plasma cell, Range: 500 meters",
			UsedBy:         "Cobra Troopers, Cobra Officers", FirstAppearance: "1983", WikiURL: wiki + "Laser_Rifle",
		},
		{
			Name: "Cobra Battle Helmet", Type: "Protective Gear", Faction: FactionCobra,
			Description:    "Standard battle helmet worn by Cobra troopers.",
			Specifications: "Material: Composite armor, Features: HUD display",
			UsedBy:         "Cobra Troopers", FirstAppearance: "1982", WikiURL: wiki + "Cobra_Battle_Helmet",
		},
		{
			Name: "Chain Gun", Type: "Automatic Weapon", Faction: FactionCobra,
			Description:    "Externally powered automatic gun used on Cobra vehicles.",
			Specifications: "Caliber: 25mm, Rate of fire: 625 rounds/min",
			UsedBy:         "Vehicle crews, Wild Weasel", FirstAppearance: "1984", WikiURL: wiki + "Chain_Gun",
		},
		{
			Name: "Destro's Beretta", Type: "Pistol", Faction: FactionCobra,
			Description:    "Modified Beretta pistol used by Destro as his sidearm.",
			Specifications: "Caliber: 9mm, Custom modifications: Gold plating",
			UsedBy:         "Destro", FirstAppearance: "1983", WikiURL: wiki + "Destro_Beretta",
		},
		{
			Name: "Night Vision Goggles", Type: "Optical Equipment", Faction: "Both",
			Description:    "Standard night vision equipment used by both factions.",
			Specifications: "Generation: III, Range: 300 meters",
			UsedBy:         "Multiple operatives", FirstAppearance: "1984", WikiURL: wiki + "Night_Vision",
		},
		{
			Name: "Grappling Hook", Type: "Utility Equipment", Faction: FactionJoe,
			Description:    "Climbing and infiltration tool used by special operatives.",
			Specifications: "Range: 50 feet, Weight capacity: 300 lbs",
			UsedBy:         "Snake Eyes, Alpine, multiple operatives", FirstAppearance: "1983", WikiURL: wiki + "Grappling_Hook",
		},
		{
			Name: "Throwing Stars", Type: "Projectile Weapon", Faction: "Neutral",
			Description:    "Traditional ninja throwing weapons used by martial arts specialists.",
			Specifications: "Material: Tempered steel, Points: 4-8",
			UsedBy:         "Snake Eyes, Storm Shadow, Jinx", FirstAppearance: "1984", WikiURL: wiki + "Throwing_Stars",
		},
	}
}

func defaultLocations() []Location {
	return []Location{
		{
			Name: "The Pit", Type: "Underground Base", Faction: FactionJoe,
			Description:     "Underground headquarters of G.I. Joe located in the Utah desert. Multi-level facility with training areas, vehicle bays, and command centers.",
			Location:        "Utah Desert, USA",
			Purpose:         "Primary command center, training facility, and vehicle storage",
			NotableFeatures: "Underground hangar, training simulator, medical bay, communications center",
			FirstAppearance: "1983", WikiURL: wiki + "The_Pit",
		},
		{
			Name: "USS Flagg", Type: "Mobile Naval Base", Faction: FactionJoe,
			Description:     "Massive aircraft carrier serving as G.I. Joe's mobile command center and primary naval base.",
			Location:        "International Waters",
			Purpose:         "Naval operations base, mobile command center, aircraft carrier",
			NotableFeatures: "Flight deck, command bridge, hangar bay, crew quarters for 1000+",
			FirstAppearance: "1985", WikiURL: wiki + "USS_Flagg",
		},
		{
			Name: "Headquarters Command Center", Type: "Command Facility", Faction: FactionJoe,
			Description:     "Above-ground command facility that serves as the administrative center for G.I. Joe operations.",
			Location:        "Classified Location, USA",
			Purpose:         "Administrative headquarters, mission planning, intelligence analysis",
			NotableFeatures: "War room, communications array, briefing rooms",
			FirstAppearance: "1982", WikiURL: wiki + "GI_Joe_Headquarters",
		},
		{
			Name: "Cobra Island", Type: "Island Nation", Faction: FactionCobra,
			Description:     "Sovereign island nation controlled by Cobra, serving as their primary headquarters and stronghold.",
			Location:        "Gulf of Mexico",
			Purpose:         "Cobra headquarters, weapons manufacturing, training facilities",
			NotableFeatures: "Terrordrome, airfields, harbor facilities, industrial complexes",
			FirstAppearance: "1986", WikiURL: wiki + "Cobra_Island",
		},
		{
			Name: "Cobra Temple", Type: "Ancient Temple Complex", Faction: FactionCobra,
			Description:     "Ancient temple complex used by Cobra as a secret base and ceremonial site.",
			Location:        "Various jungle locations",
			Purpose:         "Secret base, ceremonial site, weapons storage",
			NotableFeatures: "Hidden passages, ancient architecture, defensive systems",
			FirstAppearance: "1984", WikiURL: wiki + "Cobra_Temple",
		},
		{
			Name: "Extensive Enterprises", Type: "Corporate Headquarters", Faction: FactionCobra,
			Description:     "Cobra Commander's legitimate business front and secret operational base.",
			Location:        "Springfield, USA",
			Purpose:         "Corporate front, money laundering, recruitment center",
			NotableFeatures: "Executive offices, hidden laboratories, underground facilities",
			FirstAppearance: "1985", WikiURL: wiki + "Extensive_Enterprises",
		},
		{
			Name: "Castle Destro", Type: "Ancestral Castle", Faction: "M.A.R.S./Cobra",
			Description:     "Destro's ancestral castle in Scotland, serving as M.A.R.S. Industries headquarters.",
			Location:        "Scottish Highlands",
			Purpose:         "M.A.R.S. headquarters, weapons development, Destro's residence",
			NotableFeatures: "Ancient architecture, modern laboratories, weapons testing facilities",
			FirstAppearance: "1983", WikiURL: wiki + "Castle_Destro",
		},
		{
			Name: "M.A.R.S. Industries", Type: "Weapons Manufacturing", Faction: "M.A.R.S./Cobra",
			Description:     "Global weapons manufacturing corporation owned by Destro's family.",
			Location:        "Multiple international locations",
			Purpose:         "Weapons research, development, and manufacturing",
			NotableFeatures: "Advanced laboratories, testing ranges, manufacturing plants",
			FirstAppearance: "1983", WikiURL: wiki + "MARS_Industries",
		},
		{
			Name: "Arashikage Dojo", Type: "Training Facility", Faction: "Independent",
			Description:     "Traditional ninja training facility where Snake Eyes and Storm Shadow learned their skills.",
			Location:        "Japan",
			Purpose:         "Martial arts training, ninja education, spiritual development",
			NotableFeatures: "Traditional architecture, training grounds, meditation gardens",
			FirstAppearance: "1984", WikiURL: wiki + "Arashikage_Dojo",
		},
		{
			Name: "Silent Castle", Type: "Secret Facility", Faction: FactionCobra,
			Description:     "Cobra's secret mountain fortress used for special operations and prisoner detention.",
			Location:        "Trans-Carpathian Mountains",
			Purpose:         "Secret operations base, prisoner facility, weapons storage",
			NotableFeatures: "Mountain fortification, dungeons, hidden entrances",
			FirstAppearance: "1985", WikiURL: wiki + "Silent_Castle",
		},
		{
			Name: "Benzheen", Type: "Oil-Rich Nation", Faction: "Independent",
			Description:     "Oil-rich Middle Eastern nation often caught between G.I. Joe and Cobra conflicts.",
			Location:        "Middle East",
			Purpose:         "Oil production, strategic location, frequent battleground",
			NotableFeatures: "Oil fields, royal palace, strategic importance",
			FirstAppearance: "1985", WikiURL: wiki + "Benzheen",
		},
		{
			Name: "Millville", Type: "Small Town", Faction: "Cobra-controlled",
			Description:     "Small American town secretly controlled by Cobra as a recruitment and indoctrination center.",
			Location:        "USA (various states)",
			Purpose:         "Recruitment center, indoctrination facility, civilian cover",
			NotableFeatures: "Seemingly normal town, hidden Cobra facilities, brainwashed residents",
			FirstAppearance: "1986", WikiURL: wiki + "Millville",
		},
	}
}
