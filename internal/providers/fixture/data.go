package fixture

import (
	"github.com/preston-bernstein/football-team-service/internal/domain/players"
	"github.com/preston-bernstein/football-team-service/internal/domain/teams"
)

func sampleTeams() []teams.Team {
	return []teams.Team{
		{
			ID:              "133738",
			Name:            "Real Madrid",
			AlternateNames:  "Real Madrid CF, Los Blancos",
			Stadium:         "Santiago Bernabéu",
			StadiumLocation: "Madrid",
			Country:         "Spain",
			FormedYear:      "1902",
			Manager:         "Carlo Ancelotti",
			League:          "Spanish La Liga",
			Links: teams.Links{
				Website:   "www.realmadrid.com",
				Twitter:   "twitter.com/realmadrid",
				Instagram: "instagram.com/realmadrid",
				Facebook:  "www.facebook.com/RealMadrid",
				YouTube:   "www.youtube.com/realmadridcf",
			},
			Images: teams.Images{
				Fanart1: "http://www.thesportsdb.com/images/media/team/fanart/real-madrid-1.jpg",
				Banner:  "http://www.thesportsdb.com/images/media/team/banner/real-madrid.jpg",
			},
		},
		{
			ID:              "134221",
			Name:            "Real Madrid Castilla",
			AlternateNames:  "Castilla",
			Stadium:         "Estadio Alfredo Di Stéfano",
			StadiumLocation: "Madrid",
			Country:         "Spain",
			FormedYear:      "1930",
			League:          "Spanish Primera Federación",
		},
		{
			ID:             "133604",
			Name:           "Arsenal",
			AlternateNames: "Arsenal FC, The Gunners",
			Stadium:        "Emirates Stadium",
			Country:        "England",
			FormedYear:     "1886",
			Manager:        "Mikel Arteta",
			League:         "English Premier League",
			Links: teams.Links{
				Website: "www.arsenal.com",
				Twitter: "@Arsenal",
			},
			Images: teams.Images{
				StadiumThumb: "http://www.thesportsdb.com/images/media/team/stadium/emirates.jpg",
			},
		},
	}
}

func sampleSquads() map[string][]players.Player {
	return map[string][]players.Player{
		"133738": {
			{ID: "p1", Name: "Vinícius Júnior", Position: "Left Winger"},
			{ID: "p2", Name: "Thibaut Courtois", Position: "Goalkeeper", Cutout: "http://www.thesportsdb.com/images/media/player/cutout/courtois.png"},
			{ID: "p3", Name: "Jude Bellingham", Position: "Attacking Midfield", Thumb: "http://www.thesportsdb.com/images/media/player/thumb/bellingham.jpg"},
			{ID: "p4", Name: "Antonio Rüdiger", Position: "Centre-Back"},
			{ID: "p5", Name: "Luka Modrić", Position: "Central Midfield"},
			{ID: "p6", Name: "Andriy Lunin", Position: "Goalkeeper"},
			{ID: "p7", Name: "Dani Carvajal", Position: "Right-Back"},
			{ID: "p8", Name: "Kylian Mbappé", Position: "Centre-Forward"},
			{ID: "p9", Name: "Federico Valverde", Position: "Central Midfield"},
			{ID: "p10", Name: "Éder Militão", Position: "Centre-Back"},
			{ID: "p11", Name: "Rodrygo", Position: "Right Winger"},
			{ID: "p12", Name: "Aurélien Tchouaméni", Position: "Defensive Midfield"},
			{ID: "p13", Name: "Ferland Mendy", Position: "Left-Back"},
			{ID: "p14", Name: "Eduardo Camavinga", Position: "Central Midfield"},
			{ID: "p15", Name: "Brahim Díaz", Position: "Attacking Midfield"},
			{ID: "p16", Name: "Endrick", Position: "Striker"},
			{ID: "p17", Name: "David Alaba", Position: "Centre-Back"},
			{ID: "p18", Name: "Arda Güler", Position: "Attacking Midfield"},
			{ID: "p19", Name: "Fran García", Position: "Left-Back"},
			{ID: "p20", Name: "Kepa Arrizabalaga", Position: "Goalkeeper"},
		},
		"133604": {
			{ID: "a1", Name: "David Raya", Position: "Goalkeeper"},
			{ID: "a2", Name: "William Saliba", Position: "Centre-Back"},
			{ID: "a3", Name: "Martin Ødegaard", Position: "Attacking Midfield"},
			{ID: "a4", Name: "Bukayo Saka", Position: "Right Winger"},
			{ID: "a5", Name: "Declan Rice", Position: "Defensive Midfield"},
		},
	}
}
