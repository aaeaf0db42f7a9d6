package glm

type Mat4f = Mat4[float32]
