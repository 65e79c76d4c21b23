package mongo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// activeContractsMatch filtro de contratos vigentes.
func activeContractsMatch() bson.D {
	return bson.D{{Key: "$match", Value: bson.D{{Key: "active", Value: true}}}}
}

// lookupStages une la referencia field (hex) con _id de from y deja un único documento en as.
// $unwind sin preserveNullAndEmptyArrays descarta los contratos con referencias colgantes.
func lookupStages(from, as string) []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: from},
			{Key: "localField", Value: as + "_obj_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: as},
		}}},
		{{Key: "$unwind", Value: "$" + as}},
	}
}

// DetailedContractsPipeline contratos activos de la ventana unidos con desarrollador, juego y tipo.
// La ventana se aplica antes de las uniones, así que una página puede traer menos de limit filas.
func DetailedContractsPipeline(skip, limit int) mongo.Pipeline {
	p := mongo.Pipeline{
		activeContractsMatch(),
		{{Key: "$skip", Value: int64(skip)}},
		{{Key: "$limit", Value: int64(limit)}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "developer_info_obj_id", Value: bson.D{{Key: "$toObjectId", Value: "$developer_id"}}},
			{Key: "game_info_obj_id", Value: bson.D{{Key: "$toObjectId", Value: "$game_id"}}},
			{Key: "type_contract_info_obj_id", Value: bson.D{{Key: "$toObjectId", Value: "$type_contract_id"}}},
		}}},
	}
	p = append(p, lookupStages(collDevelopers, "developer_info")...)
	p = append(p, lookupStages(collGames, "game_info")...)
	p = append(p, lookupStages(collContractTypes, "type_contract_info")...)
	p = append(p, bson.D{{Key: "$project", Value: bson.D{
		{Key: "_id", Value: 1},
		{Key: "developer_id", Value: 1},
		{Key: "game_id", Value: 1},
		{Key: "type_contract_id", Value: 1},
		{Key: "start_date", Value: 1},
		{Key: "end_date", Value: 1},
		{Key: "active", Value: 1},
		{Key: "created_at", Value: 1},
		{Key: "updated_at", Value: 1},
		{Key: "developer_info.id", Value: bson.D{{Key: "$toString", Value: "$developer_info._id"}}},
		{Key: "developer_info.name", Value: 1},
		{Key: "game_info.id", Value: bson.D{{Key: "$toString", Value: "$game_info._id"}}},
		{Key: "game_info.title", Value: 1},
		{Key: "type_contract_info.id", Value: bson.D{{Key: "$toString", Value: "$type_contract_info._id"}}},
		{Key: "type_contract_info.description", Value: 1},
	}}})
	return p
}

// CountActiveContractsPipeline total de contratos activos en un documento {total: n}.
func CountActiveContractsPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		activeContractsMatch(),
		{{Key: "$count", Value: "total"}},
	}
}

// ActivePairPipeline cuenta contratos activos del par en {existing_contracts: n}.
// excludeID, si es un ObjectID válido, queda fuera del conteo.
func ActivePairPipeline(developerID, gameID, excludeID string) mongo.Pipeline {
	match := bson.D{
		{Key: "developer_id", Value: developerID},
		{Key: "game_id", Value: gameID},
		{Key: "active", Value: true},
	}
	if oid, err := primitive.ObjectIDFromHex(excludeID); err == nil {
		match = append(match, bson.E{Key: "_id", Value: bson.D{{Key: "$ne", Value: oid}}})
	}
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$count", Value: "existing_contracts"}},
	}
}
