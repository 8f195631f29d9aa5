package db

import "github.com/ukydev/printer-maintenance/internal/models"

// seedData is the default reference dataset loaded into an empty store.
func seedData() models.ExportData {
	return models.ExportData{
		Locations: []models.Location{
			{ID: "1", Name: "Mercado Central", Address: "Mercado Central, Buenos Aires", Latitude: -34.7082840, Longitude: -58.4888790, Company: "Diarco"},
			{ID: "2", Name: "Esteban Echeverria", Address: "Esteban Echeverria, Buenos Aires", Latitude: -34.7762620, Longitude: -58.4720910, Company: "Catter Meat S.A"},
			{ID: "3", Name: "ADM Agro", Address: "Buenos Aires", Latitude: -34.7678330, Longitude: -58.3792530, Company: "ADM Agro S.R.L"},
			{ID: "4", Name: "DHL Excel", Address: "Buenos Aires", Latitude: -34.6722460, Longitude: -58.4363080, Company: "DHL Excel"},
			{ID: "5", Name: "Dia", Address: "Buenos Aires", Latitude: -34.8372310, Longitude: -58.4108440, Company: "Dia"},
			{ID: "6", Name: "Molino Canuelas Spegazzini", Address: "Colect. Au. Ezeiza-Canuelas Km 44", Latitude: -34.900295, Longitude: -58.616422, Company: "Carlos Spegazzini"},
			{ID: "7", Name: "Exologistica Carrier", Address: "Lagos Garcia 4470", Latitude: -34.76824, Longitude: -58.480285, Company: "Esteban Echeverria"},
			{ID: "8", Name: "Exologistica Pleer", Address: "Ruta De La Tradicion 7732", Latitude: -34.741992, Longitude: -58.498072, Company: "Esteban Echeverria"},
			{ID: "9", Name: "Biogenesis Bago Planta", Address: "29 de abril 1251", Latitude: -34.797531, Longitude: -58.47131, Company: "Monte Grande"},
			{ID: "10", Name: "Saputo Versacold Mercado Central", Address: "Av. Circunvalacion 2251", Latitude: -34.714174, Longitude: -58.492927, Company: "Tapiales"},
		},
		Machines: []models.Machine{
			{ID: "1", Name: "Samsung 4020", Type: "Printer", Model: "4020", LocationID: "1", Status: models.StatusOperational},
			{ID: "2", Name: "Lexmark x656", Type: "Printer", Model: "x656", LocationID: "2", Status: models.StatusOperational},
			{ID: "3", Name: "Samsung CLP 680N", Type: "Printer", Model: "CLP 680N", LocationID: "3", Status: models.StatusOperational},
			{ID: "4", Name: "Samsung Mono 4072", Type: "Printer", Model: "Mono 4072", LocationID: "4", Status: models.StatusOperational},
			{ID: "5", Name: "HP e52645dn", Type: "Printer", Model: "e52645dn", LocationID: "5", Status: models.StatusOperational},
			{ID: "6", Name: "Lexmark Optra X656de", Type: "MFP Mono", Model: "Optra X656de", LocationID: "6", Status: models.StatusOperational},
			{ID: "7", Name: "Samsung SL-M4020ND", Type: "PRT Mono", Model: "SL-M4020ND", LocationID: "7", Status: models.StatusOperational},
			{ID: "8", Name: "Samsung SL-M5370LX", Type: "MFP Mono", Model: "SL-M5370LX", LocationID: "8", Status: models.StatusOperational},
			{ID: "9", Name: "Samsung SL-M5360RX", Type: "MFP Mono", Model: "SL-M5360RX", LocationID: "9", Status: models.StatusOperational},
			{ID: "10", Name: "Samsung SL-M4020ND", Type: "PRT Mono", Model: "SL-M4020ND", LocationID: "10", Status: models.StatusOperational},
		},
		Parts: []models.Part{
			{ID: "1", Name: "Fuser", Code: "FUS-001", Category: "Components"},
			{ID: "2", Name: "Pickup", Code: "PIC-001", Category: "Components"},
			{ID: "3", Name: "Retard", Code: "RET-001", Category: "Components"},
			{ID: "4", Name: "Clutch", Code: "CLU-001", Category: "Components"},
			{ID: "5", Name: "Low Voltage Unit", Code: "LOW-001", Category: "Components"},
			{ID: "6", Name: "Rear Door", Code: "PUE-001", Category: "Components"},
			{ID: "7", Name: "Front Cover", Code: "TAP-001", Category: "Components"},
			{ID: "8", Name: "Switch", Code: "SWI-001", Category: "Components"},
			{ID: "9", Name: "Sheet Feeder", Code: "REC-001", Category: "Components"},
			{ID: "10", Name: "Controller", Code: "CON-001", Category: "Components"},
			{ID: "11", Name: "Magenta Cartridge", Code: "CAR-001", Category: "Consumables"},
			{ID: "12", Name: "Rubber", Code: "RUB-001", Category: "Components"},
			{ID: "13", Name: "Pickup Roller", Code: "ROD-001", Category: "Components"},
			{ID: "14", Name: "Feed Tires", Code: "GOM-001", Category: "Components"},
			{ID: "15", Name: "Toner", Code: "TON-001", Category: "Consumables"},
			{ID: "16", Name: "Pickup Rollers Tray 2", Code: "ROD-PU-002", Category: "Components"},
			{ID: "17", Name: "Imaging Unit", Code: "UNI-IMG-001", Category: "Components"},
			{ID: "18", Name: "CTD Sensor", Code: "SEN-CTD-001", Category: "Components"},
			{ID: "19", Name: "Cover Cassette", Code: "COV-CAS-001", Category: "Components"},
			{ID: "20", Name: "Duplex", Code: "DUP-001", Category: "Components"},
		},
		Incidents: []models.Incident{
			{
				ID: "1", Date: "2025-08-12", LocationID: "1", MachineID: "1",
				Description: "Paper jams with grinding noise", FailureType: "Mechanical",
				Difficulty: models.DifficultyMedium, RepairHours: 3,
				PartsUsed: []models.PartUsage{
					{PartID: "2", Quantity: 1}, {PartID: "3", Quantity: 1},
					{PartID: "4", Quantity: 1}, {PartID: "1", Quantity: 1},
				},
				Technician: "Field Tech",
				Notes:      "Full cleaning, imaging unit cleaned, lubrication, replaced pickup, retard, clutch and fuser",
				EquipmentSerial: "S4020-001",
			},
			{
				ID: "2", Date: "2025-09-04", LocationID: "1", MachineID: "1",
				Description: "Printer dead with burning smell", FailureType: "Electrical",
				Difficulty: models.DifficultyHigh, RepairHours: 4,
				PartsUsed: []models.PartUsage{
					{PartID: "5", Quantity: 1}, {PartID: "1", Quantity: 1}, {PartID: "6", Quantity: 1},
				},
				Technician: "Field Tech",
				Notes:      "Low voltage unit burned out and took the fuser with it, rear door cracked and swapped",
				EquipmentSerial: "S4020-001",
			},
			{
				ID: "3", Date: "2025-09-03", LocationID: "2", MachineID: "2",
				Description: "Does not recognize supplies, defective output", FailureType: "Electronic",
				Difficulty: models.DifficultyCritical, RepairHours: 6,
				PartsUsed: []models.PartUsage{
					{PartID: "1", Quantity: 1}, {PartID: "7", Quantity: 1},
					{PartID: "8", Quantity: 1}, {PartID: "9", Quantity: 1}, {PartID: "10", Quantity: 1},
				},
				Technician: "Field Tech",
				Notes:      "Fuser was tearing sheets, front cover broken on the right side, jumpered the door switch, replaced right sheet feeder and controller",
				EquipmentSerial: "LX656-001",
			},
			{
				ID: "5", Date: "2025-08-19", LocationID: "3", MachineID: "3",
				Description: "Print quality failure", FailureType: "Consumables",
				Difficulty: models.DifficultyLow, RepairHours: 1,
				PartsUsed:  []models.PartUsage{{PartID: "11", Quantity: 1}},
				Technician: "Field Tech",
				Notes:      "Replaced magenta cartridge, cleaned unit and rollers",
				EquipmentSerial: "SCLP680N-001",
			},
			{
				ID: "6", Date: "2025-08-18", LocationID: "4", MachineID: "4",
				Description: "Duplex not printing", FailureType: "Mechanical",
				Difficulty: models.DifficultyLow, RepairHours: 1,
				PartsUsed:  []models.PartUsage{{PartID: "12", Quantity: 1}},
				Technician: "Field Tech",
				Notes:      "Needed lubrication and a rubber swap",
				EquipmentSerial: "SM4072-001",
			},
			{
				ID: "7", Date: "2025-08-19", LocationID: "2", MachineID: "2",
				Description: "Preventive maintenance", FailureType: "Maintenance",
				Difficulty: models.DifficultyLow, RepairHours: 2,
				PartsUsed:  []models.PartUsage{},
				Technician: "Field Tech",
				Notes:      "Cleaned unit, pickup roller and scanner, reset counters",
				EquipmentSerial: "LX656-001",
			},
			{
				ID: "9", Date: "2025-08-19", LocationID: "5", MachineID: "5",
				Description: "Wrinkles sheets, paper jams, error message", FailureType: "Mechanical",
				Difficulty: models.DifficultyMedium, RepairHours: 2,
				PartsUsed: []models.PartUsage{
					{PartID: "14", Quantity: 1}, {PartID: "15", Quantity: 1},
				},
				Technician: "Field Tech",
				Notes:      "Worn feed tires, toner spilled in the print path, general cleaning",
				EquipmentSerial: "HPE52645DN-001",
			},
			{
				ID: "12", Date: "2025-09-19", LocationID: "8", MachineID: "8",
				Description: "Cleaning, fuser and pickup replacement, CTD sensor cleaned", FailureType: "Corrective",
				Difficulty: models.DifficultyMedium, RepairHours: 1,
				PartsUsed: []models.PartUsage{
					{PartID: "1", Quantity: 1}, {PartID: "2", Quantity: 1}, {PartID: "18", Quantity: 1},
				},
				Technician: "Leonel",
				Notes:      "Cleaned unit, replaced fuser and pickups, reset maintenance counters, cleaned CTD sensor",
				EquipmentSerial: "076UBJFG80006JV",
			},
		},
	}
}
